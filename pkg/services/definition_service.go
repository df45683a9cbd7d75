package services

import (
	"context"
	"time"

	"github.com/trinity-ai/trinity/ent"
	"github.com/trinity-ai/trinity/ent/processdefinition"
	"github.com/trinity-ai/trinity/pkg/models"
)

// DefinitionService persists process definitions. Lifecycle rules (draft
// mutability, publish validation) live on the model; this layer only maps
// the aggregate to rows.
type DefinitionService struct {
	client *ent.Client
}

// NewDefinitionService creates a new DefinitionService
func NewDefinitionService(client *ent.Client) *DefinitionService {
	return &DefinitionService{client: client}
}

// CreateDefinition inserts a new definition row.
func (s *DefinitionService) CreateDefinition(httpCtx context.Context, def *models.ProcessDefinition) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	create := s.client.ProcessDefinition.Create().
		SetID(def.ID).
		SetName(def.Name).
		SetVersion(def.Version).
		SetStatus(processdefinition.Status(def.Status)).
		SetSteps(def.Steps).
		SetCreatedBy(def.CreatedBy).
		SetOwnerTeam(def.OwnerTeam).
		SetCreatedAt(def.CreatedAt).
		SetMaxConcurrent(def.MaxConcurrent).
		SetMaxCost(def.MaxCost).
		SetPriority(def.Priority).
		SetDataClassification(def.DataClassification)
	if def.Triggers != nil {
		create.SetTriggers(def.Triggers)
	}
	if def.Output != nil {
		create.SetOutput(def.Output)
	}
	if def.PublishedAt != nil {
		create.SetPublishedAt(*def.PublishedAt)
	}

	if _, err := create.Save(ctx); err != nil {
		return translate(err, "failed to create definition %s", def.ID)
	}
	return nil
}

// SaveDefinition writes back the mutable fields of an existing definition.
// Drafts may change their steps; publish and archive only move status.
func (s *DefinitionService) SaveDefinition(httpCtx context.Context, def *models.ProcessDefinition) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.ProcessDefinition.UpdateOneID(def.ID).
		SetName(def.Name).
		SetVersion(def.Version).
		SetStatus(processdefinition.Status(def.Status)).
		SetSteps(def.Steps).
		SetOwnerTeam(def.OwnerTeam).
		SetMaxConcurrent(def.MaxConcurrent).
		SetMaxCost(def.MaxCost).
		SetPriority(def.Priority).
		SetDataClassification(def.DataClassification)
	if def.Triggers != nil {
		update.SetTriggers(def.Triggers)
	} else {
		update.ClearTriggers()
	}
	if def.Output != nil {
		update.SetOutput(def.Output)
	} else {
		update.ClearOutput()
	}
	if def.PublishedAt != nil {
		update.SetPublishedAt(*def.PublishedAt)
	}

	if _, err := update.Save(ctx); err != nil {
		return translate(err, "failed to save definition %s", def.ID)
	}
	return nil
}

// GetDefinition retrieves a definition by id.
func (s *DefinitionService) GetDefinition(ctx context.Context, id string) (*models.ProcessDefinition, error) {
	row, err := s.client.ProcessDefinition.Get(ctx, id)
	if err != nil {
		return nil, translate(err, "failed to get definition %s", id)
	}
	return definitionFromRow(row), nil
}

// GetPublishedDefinitionByName retrieves the published version of a process.
// At most one version of a process is published at a time.
func (s *DefinitionService) GetPublishedDefinitionByName(ctx context.Context, name string) (*models.ProcessDefinition, error) {
	row, err := s.client.ProcessDefinition.Query().
		Where(
			processdefinition.NameEQ(name),
			processdefinition.StatusEQ(processdefinition.StatusPublished),
		).
		Only(ctx)
	if err != nil {
		return nil, translate(err, "failed to get published definition %q", name)
	}
	return definitionFromRow(row), nil
}

// ListDefinitions returns definitions, optionally narrowed by name and
// status, newest first.
func (s *DefinitionService) ListDefinitions(ctx context.Context, name string, status models.DefinitionStatus, limit, offset int) ([]*models.ProcessDefinition, error) {
	q := s.client.ProcessDefinition.Query()
	if name != "" {
		q = q.Where(processdefinition.NameEQ(name))
	}
	if status != "" {
		q = q.Where(processdefinition.StatusEQ(processdefinition.Status(status)))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	rows, err := q.Order(ent.Desc(processdefinition.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, translate(err, "failed to list definitions")
	}
	defs := make([]*models.ProcessDefinition, 0, len(rows))
	for _, row := range rows {
		defs = append(defs, definitionFromRow(row))
	}
	return defs, nil
}

// LatestVersion returns the most recently created version string for a
// process name, or "" when none exists.
func (s *DefinitionService) LatestVersion(ctx context.Context, name string) (string, error) {
	row, err := s.client.ProcessDefinition.Query().
		Where(processdefinition.NameEQ(name)).
		Order(ent.Desc(processdefinition.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", translate(err, "failed to get latest version of %q", name)
	}
	return row.Version, nil
}

// ArchivePublished archives the currently published version of a process, if
// any. Called before publishing a new version so the name keeps a single
// published definition.
func (s *DefinitionService) ArchivePublished(httpCtx context.Context, name string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.ProcessDefinition.Update().
		Where(
			processdefinition.NameEQ(name),
			processdefinition.StatusEQ(processdefinition.StatusPublished),
		).
		SetStatus(processdefinition.StatusArchived).
		Save(ctx)
	if err != nil {
		return translate(err, "failed to archive published versions of %q", name)
	}
	return nil
}

// DeleteDefinition removes a draft definition. Published and archived
// definitions are retained for execution history.
func (s *DefinitionService) DeleteDefinition(httpCtx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.ProcessDefinition.Delete().
		Where(
			processdefinition.IDEQ(id),
			processdefinition.StatusEQ(processdefinition.StatusDraft),
		).
		Exec(ctx)
	if err != nil {
		return translate(err, "failed to delete definition %s", id)
	}
	if n == 0 {
		exists, err := s.client.ProcessDefinition.Query().
			Where(processdefinition.IDEQ(id)).
			Exist(ctx)
		if err != nil {
			return translate(err, "failed to delete definition %s", id)
		}
		if !exists {
			return models.NewError(models.KindNotFound, "definition %s not found", id)
		}
		return models.NewError(models.KindStateConflict, "definition %s is not a draft, cannot delete", id)
	}
	return nil
}

func definitionFromRow(row *ent.ProcessDefinition) *models.ProcessDefinition {
	return &models.ProcessDefinition{
		ID:                 row.ID,
		Name:               row.Name,
		Version:            row.Version,
		Status:             models.DefinitionStatus(row.Status),
		Steps:              row.Steps,
		Triggers:           row.Triggers,
		Output:             row.Output,
		CreatedBy:          row.CreatedBy,
		OwnerTeam:          row.OwnerTeam,
		CreatedAt:          row.CreatedAt,
		PublishedAt:        row.PublishedAt,
		MaxConcurrent:      row.MaxConcurrent,
		MaxCost:            row.MaxCost,
		Priority:           row.Priority,
		DataClassification: row.DataClassification,
	}
}
