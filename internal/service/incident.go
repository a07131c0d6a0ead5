package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shenikar/fleet_incident_tracker/internal/config"
	"github.com/shenikar/fleet_incident_tracker/internal/events"
	"github.com/shenikar/fleet_incident_tracker/internal/models"
	"github.com/shenikar/fleet_incident_tracker/internal/storage"
	"github.com/sirupsen/logrus"
)

// IncidentRepository определяет контракт для работы с бд инцидентов.
// Create, Update и AddUpdate выполняются одной транзакцией вместе с записями журнала.
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident, updates []*models.IncidentUpdate) error
	GetByID(ctx context.Context, id int64) (*models.Incident, error)
	ListUpdates(ctx context.Context, incidentID int64) ([]*models.IncidentUpdate, error)
	Update(ctx context.Context, id int64, plan models.UpdatePlanner) ([]*models.IncidentUpdate, error)
	AddUpdate(ctx context.Context, id int64, patch *models.IncidentPatch, update *models.IncidentUpdate) error
	List(ctx context.Context, filter models.IncidentFilter, page models.Pagination) ([]*models.Incident, int, error)
	CollectStats(ctx context.Context) (*models.StatsSource, error)

	GetIncidentFromCache(ctx context.Context, id int64) (*models.Incident, error)
	IncidentCacheVersion(ctx context.Context, id int64) (int64, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident, version int64) error
	InvalidateIncidentCache(ctx context.Context, id int64) error
}

// IncidentService определяет контракт для бизнес-логики управления инцидентами
type IncidentService interface {
	CreateIncident(ctx context.Context, incident *models.Incident, uploads []models.Upload) (*models.Incident, error)
	GetIncident(ctx context.Context, id int64) (*models.Incident, error)
	UpdateIncident(ctx context.Context, id int64, patch *models.IncidentPatch, actorID *int64, uploads []models.Upload) (*models.Incident, error)
	AddUpdate(ctx context.Context, id int64, sub *models.UpdateSubmission) (*models.IncidentUpdate, error)
	ListIncidents(ctx context.Context, filter models.IncidentFilter, page models.Pagination) (*models.IncidentPage, error)
	GetStats(ctx context.Context) (*models.IncidentStats, error)
}

type incidentService struct {
	repo      IncidentRepository
	logger    *logrus.Logger
	cfg       *config.Config
	publisher events.EventPublisher
	uploader  storage.Uploader
	now       func() time.Time
}

func NewIncidentService(repo IncidentRepository, logger *logrus.Logger, cfg *config.Config, publisher events.EventPublisher, uploader storage.Uploader) IncidentService {
	return &incidentService{
		repo:      repo,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
		uploader:  uploader,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CreateIncident загружает вложения и создает инцидент вместе с начальными записями журнала
func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident, uploads []models.Upload) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreateIncident",
		"title":   incident.Title,
		"car_id":  incident.CarID,
	})
	log.Info("Attempting to create a new incident")

	if incident.Severity == "" {
		incident.Severity = models.SeverityLow
	}
	if incident.Status == "" {
		incident.Status = models.StatusPending
	}
	if incident.ReportedAt.IsZero() {
		incident.ReportedAt = s.now()
	}

	// Все загрузки завершаются до начала транзакции
	uploaded, err := s.uploadAttachments(ctx, uploads)
	if err != nil {
		log.WithError(err).Error("Failed to upload incident attachments")
		return nil, fmt.Errorf("service: could not upload attachments: %w", err)
	}
	incident.Images = append(nonNil(incident.Images), uploaded[models.AttachmentImages]...)
	incident.Documents = append(nonNil(incident.Documents), uploaded[models.AttachmentDocuments]...)

	updates := toUpdates(0, incident.ReportedByID, CreationEvents(incident))

	storeCtx, cancel := s.storeContext(ctx)
	defer cancel()
	if err := s.repo.Create(storeCtx, incident, updates); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return nil, fmt.Errorf("service: could not create incident: %w", err)
	}
	log = log.WithField("incident_id", incident.ID)
	log.Info("Incident created successfully")

	s.publish(ctx, log, updates)

	created, err := s.repo.GetByID(storeCtx, incident.ID)
	if err != nil {
		log.WithError(err).Warn("Failed to reload created incident, returning unjoined record")
		return incident, nil
	}
	return created, nil
}

// GetIncident получает инцидент по ID вместе с журналом (сначала из кеша)
func (s *incidentService) GetIncident(ctx context.Context, id int64) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})
	log.Info("Fetching incident by ID")

	cached, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident from cache")
	}
	if cached != nil {
		log.Debug("Incident served from cache")
		return cached, nil
	}

	// Версию берем до чтения из бд, чтобы не закешировать данные, устаревшие из-за параллельной записи
	version, versionErr := s.repo.IncidentCacheVersion(ctx, id)
	if versionErr != nil {
		log.WithError(versionErr).Warn("Failed to read incident cache version")
	}

	storeCtx, cancel := s.storeContext(ctx)
	defer cancel()

	incident, err := s.repo.GetByID(storeCtx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident in repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	updates, err := s.repo.ListUpdates(storeCtx, id)
	if err != nil {
		log.WithError(err).Error("Failed to list incident updates")
		return nil, fmt.Errorf("service: could not get incident updates: %w", err)
	}
	incident.Updates = updates

	if versionErr == nil {
		if err := s.repo.SetIncidentCache(ctx, incident, version); err != nil {
			log.WithError(err).Warn("Failed to cache incident")
		}
	}

	log.Info("Incident fetched successfully")
	return incident, nil
}

// UpdateIncident применяет частичное обновление и пишет в журнал события, найденные сравнением
func (s *incidentService) UpdateIncident(ctx context.Context, id int64, patch *models.IncidentPatch, actorID *int64, uploads []models.Upload) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateIncident",
		"incident_id": id,
	})
	log.Info("Attempting to update incident")

	if patch == nil {
		patch = &models.IncidentPatch{}
	}

	if err := s.ensureExists(ctx, id); err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent incident")
		return nil, fmt.Errorf("service: incident with id %d not found for update: %w", id, err)
	}

	// Загрузки идут со своим таймаутом, до обращения к хранилищу на запись
	uploaded, err := s.uploadAttachments(ctx, uploads)
	if err != nil {
		log.WithError(err).Error("Failed to upload incident attachments")
		return nil, fmt.Errorf("service: could not upload attachments: %w", err)
	}

	plan := func(current *models.Incident) (*models.IncidentPatch, []*models.IncidentUpdate) {
		planned := *patch
		planned.Images = mergeAttachments(patch.Images, current.Images, uploaded[models.AttachmentImages])
		planned.Documents = mergeAttachments(patch.Documents, current.Documents, uploaded[models.AttachmentDocuments])

		actor := ResolveActor(actorID, current, &planned)
		return &planned, toUpdates(id, actor, DiffIncident(current, &planned))
	}

	storeCtx, cancel := s.storeContext(ctx)
	defer cancel()

	updates, err := s.repo.Update(storeCtx, id, plan)
	if err != nil {
		log.WithError(err).Error("Failed to update incident in repository")
		return nil, fmt.Errorf("service: could not update incident: %w", err)
	}
	log.WithField("events", len(updates)).Info("Incident updated successfully")

	s.invalidate(ctx, log, id)
	s.publish(ctx, log, updates)

	reloadCtx, reloadCancel := s.storeContext(ctx)
	defer reloadCancel()

	updated, err := s.repo.GetByID(reloadCtx, id)
	if err != nil {
		log.WithError(err).Error("Failed to reload updated incident")
		return nil, fmt.Errorf("service: could not reload incident: %w", err)
	}
	return updated, nil
}

// AddUpdate добавляет запись в журнал и, в зависимости от типа, меняет соответствующие поля инцидента
func (s *incidentService) AddUpdate(ctx context.Context, id int64, sub *models.UpdateSubmission) (*models.IncidentUpdate, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "AddUpdate",
		"incident_id": id,
		"update_type": sub.UpdateType,
	})
	log.Info("Attempting to add incident update")

	if !sub.UpdateType.Valid() {
		return nil, fmt.Errorf("%w: unknown update type %q", models.ErrValidation, sub.UpdateType)
	}

	storeCtx, cancel := s.storeContext(ctx)
	defer cancel()

	if _, err := s.repo.GetByID(storeCtx, id); err != nil {
		log.WithError(err).Warn("Attempted to add update to a non-existent incident")
		return nil, fmt.Errorf("service: incident with id %d not found for update: %w", id, err)
	}

	update := &models.IncidentUpdate{
		IncidentID: id,
		UserID:     sub.UserID,
		UpdateType: sub.UpdateType,
		Message:    sub.Message,
	}
	if err := s.repo.AddUpdate(storeCtx, id, SubmissionPatch(sub), update); err != nil {
		log.WithError(err).Error("Failed to add incident update in repository")
		return nil, fmt.Errorf("service: could not add incident update: %w", err)
	}
	log.WithField("update_id", update.ID).Info("Incident update added successfully")

	s.invalidate(ctx, log, id)
	s.publish(ctx, log, []*models.IncidentUpdate{update})

	return update, nil
}

// ListIncidents возвращает страницу инцидентов по фильтру
func (s *incidentService) ListIncidents(ctx context.Context, filter models.IncidentFilter, page models.Pagination) (*models.IncidentPage, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidents",
		"page":    page.Page,
		"limit":   page.Limit,
	})
	log.Info("Listing incidents")

	storeCtx, cancel := s.storeContext(ctx)
	defer cancel()

	items, total, err := s.repo.List(storeCtx, filter, page)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(items)).WithField("total", total).Info("Incidents listed successfully")
	return &models.IncidentPage{
		Items:      items,
		Page:       page.Page,
		Limit:      page.Limit,
		Total:      total,
		TotalPages: totalPages(total, page.Limit),
	}, nil
}

// GetStats возвращает агрегированную статистику по инцидентам
func (s *incidentService) GetStats(ctx context.Context) (*models.IncidentStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "GetStats",
	})

	storeCtx, cancel := s.storeContext(ctx)
	defer cancel()

	src, err := s.repo.CollectStats(storeCtx)
	if err != nil {
		log.WithError(err).Error("Failed to collect incident stats")
		return nil, fmt.Errorf("service: could not get stats: %w", err)
	}

	stats := AggregateStats(src)
	log.WithField("total", stats.Total).Info("Incident stats computed")
	return stats, nil
}

// ensureExists проверяет наличие инцидента до загрузки файлов
func (s *incidentService) ensureExists(ctx context.Context, id int64) error {
	storeCtx, cancel := s.storeContext(ctx)
	defer cancel()

	_, err := s.repo.GetByID(storeCtx, id)
	return err
}

// storeContext ограничивает время обращения к хранилищу
func (s *incidentService) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg == nil || s.cfg.StoreTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.cfg.StoreTimeout)
}

func (s *incidentService) invalidate(ctx context.Context, log *logrus.Entry, id int64) {
	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}
}

// publish отправляет зафиксированные записи журнала подписчикам, ошибки только логируются
func (s *incidentService) publish(ctx context.Context, log *logrus.Entry, updates []*models.IncidentUpdate) {
	if s.publisher == nil {
		return
	}
	for _, u := range updates {
		if err := s.publisher.Publish(ctx, events.NewIncidentEvent(u)); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			log.WithError(err).WithField("update_type", u.UpdateType).Warn("Failed to publish incident event")
		}
	}
}

// mergeAttachments добавляет загруженные файлы к списку из патча (или к текущему, если патч пуст)
func mergeAttachments(fromPatch, existing, uploaded []string) []string {
	if len(uploaded) == 0 {
		return fromPatch
	}
	base := fromPatch
	if len(base) == 0 {
		base = existing
	}
	merged := make([]string, 0, len(base)+len(uploaded))
	merged = append(merged, base...)
	return append(merged, uploaded...)
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
