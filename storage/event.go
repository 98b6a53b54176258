package storage

import "aeropartner/models"

// GetAllEvents returns active events ordered by date.
func (s *Storage) GetAllEvents() ([]models.Event, error) {
	var events []models.Event
	err := s.db.Where("is_active = ?", true).
		Order("event_date asc").
		Find(&events).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	return events, nil
}

// GetUpcomingEvents returns the next batch of active events by date.
// TODO: add an event_date >= now() filter once product confirms past
// events should drop off the dashboard.
func (s *Storage) GetUpcomingEvents() ([]models.Event, error) {
	var events []models.Event
	err := s.db.Where("is_active = ?", true).
		Order("event_date asc").
		Limit(10).
		Find(&events).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	return events, nil
}

func (s *Storage) GetEvent(id uint) (*models.Event, error) {
	var event models.Event
	if err := s.db.Where("id = ?", id).First(&event).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &event, nil
}

func (s *Storage) CreateEvent(event *models.Event) error {
	return wrapErr(s.db.Create(event).Error)
}

// UpdateEvent merges the supplied fields into an existing event.
func (s *Storage) UpdateEvent(id uint, updates map[string]interface{}) (*models.Event, error) {
	res := s.db.Model(&models.Event{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, wrapErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetEvent(id)
}

// HasEventRegistration reports whether the partner already registered
// for the event.
func (s *Storage) HasEventRegistration(partnerID, eventID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.EventRegistration{}).
		Where("partner_id = ? AND event_id = ?", partnerID, eventID).
		Count(&count).Error
	if err != nil {
		return false, wrapErr(err)
	}
	return count > 0, nil
}

// RegisterForEvent inserts a registration row. The event participant
// counter is the caller's responsibility, composed in a Transaction.
func (s *Storage) RegisterForEvent(reg *models.EventRegistration) error {
	return wrapErr(s.db.Create(reg).Error)
}

// GetPartnerEventRegistrations returns a partner's registrations joined
// with their events, most recent first.
func (s *Storage) GetPartnerEventRegistrations(partnerID uint) ([]models.EventRegistration, error) {
	var regs []models.EventRegistration
	err := s.db.Where("partner_id = ?", partnerID).
		Preload("Event").
		Order("registration_date desc").
		Find(&regs).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	return regs, nil
}
