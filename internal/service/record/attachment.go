package record

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/heartmarshall/trainrec-backend/internal/adapter/storage"
	"github.com/heartmarshall/trainrec-backend/internal/domain"
)

// AddAttachment stores an evidence file for a record. Only the owner may
// upload, and only while the record is still SUBMITTED.
func (s *Service) AddAttachment(ctx context.Context, input AttachmentInput, content io.Reader) (*domain.RecordAttachment, error) {
	if err := input.validate(s.cfg.ContentTypes(), s.cfg.MaxAttachmentBytes); err != nil {
		return nil, err
	}

	caller, err := s.actor(ctx)
	if err != nil {
		return nil, fmt.Errorf("record.AddAttachment: %w", err)
	}
	rec, err := s.records.GetByID(ctx, input.RecordID)
	if err != nil {
		return nil, fmt.Errorf("record.AddAttachment: %w", err)
	}
	if rec.UserID != caller.ID {
		return nil, fmt.Errorf("record.AddAttachment: %w", domain.ErrForbidden)
	}
	if rec.Status != domain.RecordStatusSubmitted {
		return nil, fmt.Errorf("record.AddAttachment: record is %s: %w", rec.Status, domain.ErrConflict)
	}

	id := uuid.New()
	key := rec.ID.String() + "/" + id.String()
	size, err := s.files.Put(ctx, key, content, s.cfg.MaxAttachmentBytes)
	if err != nil {
		if errors.Is(err, storage.ErrTooLarge) {
			return nil, domain.NewValidationError("file", "too large")
		}
		return nil, fmt.Errorf("record.AddAttachment: %w", err)
	}

	// The status is re-checked under the row lock so that a concurrent review
	// cannot commit between the check and the insert.
	var att *domain.RecordAttachment
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		locked, err := s.records.GetByIDForUpdate(ctx, rec.ID)
		if err != nil {
			return err
		}
		if locked.Status != domain.RecordStatusSubmitted {
			return fmt.Errorf("record is %s: %w", locked.Status, domain.ErrConflict)
		}
		att, err = s.attachments.Create(ctx, &domain.RecordAttachment{
			ID:          id,
			RecordID:    rec.ID,
			FileName:    path.Base(strings.TrimSpace(input.FileName)),
			ContentType: normalizeContentType(input.ContentType),
			SizeBytes:   size,
			StorageKey:  key,
			CreatedAt:   s.now().UTC(),
		})
		return err
	})
	if err != nil {
		if delErr := s.files.Delete(ctx, key); delErr != nil {
			s.log.WarnContext(ctx, "orphaned attachment file",
				slog.String("storage_key", key),
				slog.String("error", delErr.Error()),
			)
		}
		return nil, fmt.Errorf("record.AddAttachment: %w", err)
	}

	s.log.InfoContext(ctx, "attachment stored",
		slog.String("record_id", rec.ID.String()),
		slog.String("attachment_id", att.ID.String()),
		slog.Int64("size", att.SizeBytes),
	)
	return att, nil
}

// OpenAttachment returns the metadata and content of an attachment. The
// caller must be allowed to view the record it belongs to. The caller closes
// the returned file.
func (s *Service) OpenAttachment(ctx context.Context, id uuid.UUID) (*domain.RecordAttachment, afero.File, error) {
	caller, err := s.actor(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("record.OpenAttachment: %w", err)
	}
	att, err := s.attachments.GetByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("record.OpenAttachment: %w", err)
	}
	if _, _, err := s.visible(ctx, caller, att.RecordID); err != nil {
		return nil, nil, fmt.Errorf("record.OpenAttachment: %w", err)
	}

	f, err := s.files.Open(ctx, att.StorageKey)
	if err != nil {
		return nil, nil, fmt.Errorf("record.OpenAttachment: %w", err)
	}
	return att, f, nil
}

// ListAttachments returns the attachments of a record visible to the caller.
func (s *Service) ListAttachments(ctx context.Context, recordID uuid.UUID) ([]*domain.RecordAttachment, error) {
	caller, err := s.actor(ctx)
	if err != nil {
		return nil, fmt.Errorf("record.ListAttachments: %w", err)
	}
	if _, _, err := s.visible(ctx, caller, recordID); err != nil {
		return nil, fmt.Errorf("record.ListAttachments: %w", err)
	}

	atts, err := s.attachments.ListByRecord(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("record.ListAttachments: %w", err)
	}
	return atts, nil
}
