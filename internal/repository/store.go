package repository

import (
	"photostudio-backend/internal/database/models"
	apperrors "photostudio-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store aggregates one repository per entity kind over a shared connection
type Store struct {
	db *gorm.DB

	Studios       *Repository[models.Studio]
	TeamMembers   *Repository[models.TeamMember]
	Events        *Repository[models.Event]
	Ceremonies    *Repository[models.Ceremony]
	Assignments   *Repository[models.TeamAssignment]
	Galleries     *Repository[models.Gallery]
	Photos        *Repository[models.Photo]
	GalleryPhotos *Repository[models.GalleryPhoto]
}

// NewStore creates a new store
func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:            db,
		Studios:       NewRepository[models.Studio](db),
		TeamMembers:   NewRepository[models.TeamMember](db),
		Events:        NewRepository[models.Event](db),
		Ceremonies:    NewRepository[models.Ceremony](db),
		Assignments:   NewRepository[models.TeamAssignment](db),
		Galleries:     NewRepository[models.Gallery](db),
		Photos:        NewRepository[models.Photo](db),
		GalleryPhotos: NewRepository[models.GalleryPhoto](db),
	}
}

// DB returns the underlying connection
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Transaction runs fn against a store bound to a single transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
func (s *Store) Transaction(fn func(tx *Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

// DeleteEvent removes an event with its ceremonies, assignments, photos and the
// gallery links to those photos. Galleries of the event are kept.
func (s *Store) DeleteEvent(id uuid.UUID) error {
	return cascadeError("delete event", s.Transaction(func(tx *Store) error {
		eventPhotos := tx.db.Model(&models.Photo{}).Select("id").Where("event_id = ?", id)
		if err := tx.unlinkPhotos(Where("photo_id IN (?)", eventPhotos)); err != nil {
			return err
		}
		if _, err := tx.Photos.DeleteWhere(WhereEq("event_id", id)); err != nil {
			return err
		}
		if _, err := tx.Assignments.DeleteWhere(WhereEq("event_id", id)); err != nil {
			return err
		}
		if _, err := tx.Ceremonies.DeleteWhere(WhereEq("event_id", id)); err != nil {
			return err
		}
		return tx.Events.Delete(id)
	}))
}

// DeleteCeremony removes a ceremony and its scoped assignments, detaches its
// photos and renumbers the remaining ceremonies of the event 1..N.
func (s *Store) DeleteCeremony(id uuid.UUID) error {
	return cascadeError("delete ceremony", s.Transaction(func(tx *Store) error {
		ceremony, err := tx.Ceremonies.GetByID(id)
		if err != nil {
			return err
		}
		if _, err := tx.Assignments.DeleteWhere(WhereEq("ceremony_id", id)); err != nil {
			return err
		}
		if _, err := tx.Photos.UpdateWhere(map[string]interface{}{"ceremony_id": nil}, WhereEq("ceremony_id", id)); err != nil {
			return err
		}
		if err := tx.Ceremonies.Delete(id); err != nil {
			return err
		}
		return tx.RenumberCeremonies(ceremony.EventID)
	}))
}

// RenumberCeremonies closes gaps in the ceremony order of an event
func (s *Store) RenumberCeremonies(eventID uuid.UUID) error {
	ceremonies, err := s.Ceremonies.List(WhereEq("event_id", eventID), OrderBy("order_index ASC, created_at ASC"))
	if err != nil {
		return err
	}
	for i, c := range ceremonies {
		if c.OrderIndex == i+1 {
			continue
		}
		if _, err := s.Ceremonies.Update(c.ID, map[string]interface{}{"order_index": i + 1}); err != nil {
			return err
		}
	}
	return nil
}

// RenumberGalleryPhotos closes gaps in the photo order of a gallery
func (s *Store) RenumberGalleryPhotos(galleryID uuid.UUID) error {
	links, err := s.GalleryPhotos.List(WhereEq("gallery_id", galleryID), OrderBy("order_index ASC, created_at ASC"))
	if err != nil {
		return err
	}
	for i, link := range links {
		if link.OrderIndex == i+1 {
			continue
		}
		if _, err := s.GalleryPhotos.Update(link.ID, map[string]interface{}{"order_index": i + 1}); err != nil {
			return err
		}
	}
	return nil
}

// DeletePhoto removes a photo and its gallery links
func (s *Store) DeletePhoto(id uuid.UUID) error {
	return cascadeError("delete photo", s.Transaction(func(tx *Store) error {
		if err := tx.unlinkPhotos(WhereEq("photo_id", id)); err != nil {
			return err
		}
		return tx.Photos.Delete(id)
	}))
}

// DeleteGallery removes a gallery and its photo links. Photos are kept.
func (s *Store) DeleteGallery(id uuid.UUID) error {
	return cascadeError("delete gallery", s.Transaction(func(tx *Store) error {
		if _, err := tx.GalleryPhotos.DeleteWhere(WhereEq("gallery_id", id)); err != nil {
			return err
		}
		return tx.Galleries.Delete(id)
	}))
}

// DeleteTeamMember removes a team member and their assignments
func (s *Store) DeleteTeamMember(id uuid.UUID) error {
	return cascadeError("delete team member", s.Transaction(func(tx *Store) error {
		if _, err := tx.Assignments.DeleteWhere(WhereEq("team_member_id", id)); err != nil {
			return err
		}
		return tx.TeamMembers.Delete(id)
	}))
}

// DeleteStudio removes a studio and every record it owns
func (s *Store) DeleteStudio(id uuid.UUID) error {
	return cascadeError("delete studio", s.Transaction(func(tx *Store) error {
		studioEvents := tx.db.Model(&models.Event{}).Select("id").Where("studio_id = ?", id)
		studioGalleries := tx.db.Model(&models.Gallery{}).Select("id").Where("studio_id = ?", id)
		studioPhotos := tx.db.Model(&models.Photo{}).Select("id").Where("event_id IN (?)", studioEvents)

		if _, err := tx.GalleryPhotos.DeleteWhere(Where("gallery_id IN (?) OR photo_id IN (?)", studioGalleries, studioPhotos)); err != nil {
			return err
		}
		if _, err := tx.Photos.DeleteWhere(Where("event_id IN (?)", studioEvents)); err != nil {
			return err
		}
		if _, err := tx.Assignments.DeleteWhere(Where("event_id IN (?)", studioEvents)); err != nil {
			return err
		}
		if _, err := tx.Ceremonies.DeleteWhere(Where("event_id IN (?)", studioEvents)); err != nil {
			return err
		}
		if _, err := tx.Galleries.DeleteWhere(WhereEq("studio_id", id)); err != nil {
			return err
		}
		if _, err := tx.Events.DeleteWhere(WhereEq("studio_id", id)); err != nil {
			return err
		}
		if _, err := tx.TeamMembers.DeleteWhere(WhereEq("studio_id", id)); err != nil {
			return err
		}
		return tx.Studios.Delete(id)
	}))
}

// unlinkPhotos deletes the gallery links matching pred and renumbers every gallery that lost one
func (s *Store) unlinkPhotos(pred Predicate) error {
	var galleryIDs []uuid.UUID
	if err := pred(s.db.Model(&models.GalleryPhoto{})).Distinct().Pluck("gallery_id", &galleryIDs).Error; err != nil {
		return err
	}
	if len(galleryIDs) == 0 {
		return nil
	}
	if _, err := s.GalleryPhotos.DeleteWhere(pred); err != nil {
		return err
	}
	for _, galleryID := range galleryIDs {
		if err := s.RenumberGalleryPhotos(galleryID); err != nil {
			return err
		}
	}
	return nil
}

// cascadeError reports a failed cascade as a storage failure. A missing root
// record keeps its NotFound type.
func cascadeError(op string, err error) error {
	if err == nil || apperrors.IsNotFound(err) {
		return err
	}
	return apperrors.NewStorageError(op, err)
}
