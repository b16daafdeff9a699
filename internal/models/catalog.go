package models

// Shared field names.
const (
	FieldTitle    = "title"
	FieldStatus   = "status"
	FieldTags     = "tags"
	FieldPriority = "priority"
)

// Block fields.
const (
	FieldContent    = "content"
	FieldBlockType  = "type"
	FieldCompany    = "company"
	FieldURL        = "url"
	FieldPublished  = "published"
	FieldDueDate    = "dueDate"
	FieldReviewedAt = "reviewedAt"
)

// Roadmap item fields.
const (
	FieldDescription   = "description"
	FieldPhase         = "phase"
	FieldProgress      = "progress"
	FieldMilestone     = "milestone"
	FieldStartDate     = "startDate"
	FieldTargetDate    = "targetDate"
	FieldLinkedBlockID = "linkedBlockId"
)

// Block statuses.
const (
	BlockStatusDraft         = "DRAFT"
	BlockStatusPendingReview = "PENDING_REVIEW"
	BlockStatusApproved      = "APPROVED"
	BlockStatusLive          = "LIVE"
	BlockStatusVision        = "VISION"
	BlockStatusArchived      = "ARCHIVED"
)

// BlockStatuses is the closed option set of the block status field.
var BlockStatuses = []string{
	BlockStatusDraft,
	BlockStatusPendingReview,
	BlockStatusApproved,
	BlockStatusLive,
	BlockStatusVision,
	BlockStatusArchived,
}

// BlockTypes is the closed option set of the block type field.
var BlockTypes = []string{
	"COMPANY", "PAGE_ROOT", "CORE_VALUE_PROP", "PAIN_POINT", "SOLUTION",
	"FEATURE", "VERTICAL", "ARTICLE", "TECH_COMPONENT", "HEADLINE",
	"SUBHEADLINE", "CTA", "SECTION", "TECHNICAL",
}

// Companies is the closed option set of the block company field.
var Companies = []string{"CERE", "CEF", "SHARED"}

// Roadmap statuses.
const (
	RoadmapStatusNotStarted = "NOT_STARTED"
	RoadmapStatusInProgress = "IN_PROGRESS"
	RoadmapStatusCompleted  = "COMPLETED"
	RoadmapStatusBlocked    = "BLOCKED"
)

// RoadmapStatuses is the closed option set of the roadmap status field.
var RoadmapStatuses = []string{
	RoadmapStatusNotStarted,
	RoadmapStatusInProgress,
	RoadmapStatusCompleted,
	RoadmapStatusBlocked,
}

// RoadmapPriorities is the closed option set of the roadmap priority field.
var RoadmapPriorities = []string{"LOW", "MEDIUM", "HIGH", "CRITICAL"}

// RoadmapPhases is the closed option set of the roadmap phase field.
var RoadmapPhases = []string{"DISCOVERY", "DESIGN", "BUILD", "LAUNCH", "GROWTH"}
