package mapper

import (
	"log/slog"
	"time"

	"github.com/Brommah/contentfinal-sub002/internal/models"
	"github.com/Brommah/contentfinal-sub002/internal/remote"
)

// BlockSpecs is the remote layout of the blocks database.
var BlockSpecs = []FieldSpec{
	{Field: models.FieldTitle, Property: "Name", Type: remote.PropertyTitle, Default: models.StringValue("")},
	{Field: models.FieldContent, Property: "Content", Type: remote.PropertyRichText, Default: models.StringValue("")},
	{
		Field:    models.FieldStatus,
		Property: "Status",
		Type:     remote.PropertySelect,
		Options:  models.BlockStatuses,
		Default:  models.SelectValue(models.BlockStatusDraft),
	},
	{
		Field:    models.FieldBlockType,
		Property: "Type",
		Type:     remote.PropertySelect,
		Options:  models.BlockTypes,
		Default:  models.SelectValue("FEATURE"),
	},
	{
		Field:    models.FieldCompany,
		Property: "Company",
		Type:     remote.PropertySelect,
		Options:  models.Companies,
		Default:  models.SelectValue("SHARED"),
	},
	{Field: models.FieldTags, Property: "Tags", Type: remote.PropertyMultiSelect, Default: models.TagsValue()},
	{Field: models.FieldURL, Property: "URL", Type: remote.PropertyURL, Default: models.URLValue("")},
	{Field: models.FieldPublished, Property: "Published", Type: remote.PropertyCheckbox, Default: models.BoolValue(false)},
	{
		Field:    models.FieldPriority,
		Property: "Priority",
		Type:     remote.PropertySelect,
		Options:  models.RoadmapPriorities,
		Default:  models.SelectValue("MEDIUM"),
	},
	{Field: models.FieldDueDate, Property: "Due Date", Type: remote.PropertyDate, Default: models.DateValue(time.Time{})},
	{Field: models.FieldReviewedAt, Property: "Reviewed At", Type: remote.PropertyDate, Default: models.TimestampValue(time.Time{})},
}

// RoadmapSpecs is the remote layout of the roadmap database.
var RoadmapSpecs = []FieldSpec{
	{Field: models.FieldTitle, Property: "Name", Type: remote.PropertyTitle, Default: models.StringValue("")},
	{Field: models.FieldDescription, Property: "Description", Type: remote.PropertyRichText, Default: models.StringValue("")},
	{
		Field:    models.FieldStatus,
		Property: "Status",
		Type:     remote.PropertySelect,
		Options:  models.RoadmapStatuses,
		Default:  models.SelectValue(models.RoadmapStatusNotStarted),
	},
	{
		Field:    models.FieldPriority,
		Property: "Priority",
		Type:     remote.PropertySelect,
		Options:  models.RoadmapPriorities,
		Default:  models.SelectValue("MEDIUM"),
	},
	{
		Field:    models.FieldPhase,
		Property: "Phase",
		Type:     remote.PropertySelect,
		Options:  models.RoadmapPhases,
		Default:  models.SelectValue("DISCOVERY"),
	},
	{Field: models.FieldTags, Property: "Tags", Type: remote.PropertyMultiSelect, Default: models.TagsValue()},
	{Field: models.FieldProgress, Property: "Progress", Type: remote.PropertyNumber, Default: models.NumberValue(0)},
	{Field: models.FieldMilestone, Property: "Milestone", Type: remote.PropertyCheckbox, Default: models.BoolValue(false)},
	{Field: models.FieldStartDate, Property: "Start Date", Type: remote.PropertyDate, Default: models.DateValue(time.Time{})},
	{Field: models.FieldTargetDate, Property: "Target Date", Type: remote.PropertyDate, Default: models.DateValue(time.Time{})},
	{Field: models.FieldLinkedBlockID, Property: "Linked Block", Type: remote.PropertyRichText, Default: models.StringValue("")},
}

// Block returns the mapper for canvas blocks.
func Block(logger *slog.Logger) *Mapper {
	return New(models.EntityTypeBlock, BlockSpecs, logger)
}

// Roadmap returns the mapper for roadmap items.
func Roadmap(logger *slog.Logger) *Mapper {
	return New(models.EntityTypeRoadmapItem, RoadmapSpecs, logger)
}
