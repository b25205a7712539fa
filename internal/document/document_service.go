package document

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	documenterrors "go-hradmin/internal/document/errors"
)

type Service interface {
	Create(ctx context.Context, companyID, uploadedBy string, req CreateDocumentRequest) (*DocumentResponse, error)
	GetAllByEntity(ctx context.Context, companyID, entityType, entityID string) ([]DocumentResponse, error)
	GetByID(ctx context.Context, companyID, id string) (*DocumentResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("document.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, companyID, uploadedBy string, req CreateDocumentRequest) (*DocumentResponse, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return nil, documenterrors.ErrInvalidDocumentID
	}

	entityType := EntityType(req.EntityType)
	if !entityType.Valid() {
		return nil, documenterrors.ErrInvalidEntityType
	}

	entityID, err := uuid.Parse(req.EntityID)
	if err != nil {
		return nil, documenterrors.ErrInvalidEntityID
	}

	d := &Document{
		ID:         uuid.New(),
		CompanyID:  cid,
		EntityType: entityType,
		EntityID:   entityID,
		FileName:   req.FileName,
		FileType:   req.FileType,
		FileSize:   req.FileSize,
	}
	if uid, err := uuid.Parse(uploadedBy); err == nil {
		d.UploadedBy = uid
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}

	s.logger.Info("document attached",
		zap.String("document_id", d.ID.String()),
		zap.String("entity_type", string(entityType)),
		zap.String("entity_id", entityID.String()),
	)
	return mapToResponse(d), nil
}

func (s *service) GetAllByEntity(ctx context.Context, companyID, entityType, entityID string) ([]DocumentResponse, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return nil, documenterrors.ErrInvalidDocumentID
	}

	et := EntityType(entityType)
	if !et.Valid() {
		return nil, documenterrors.ErrInvalidEntityType
	}

	eid, err := uuid.Parse(entityID)
	if err != nil {
		return nil, documenterrors.ErrInvalidEntityID
	}

	documents, err := s.repo.FindAllByEntity(ctx, cid, et, eid)
	if err != nil {
		return nil, err
	}

	out := make([]DocumentResponse, 0, len(documents))
	for i := range documents {
		out = append(out, *mapToResponse(&documents[i]))
	}
	return out, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (*DocumentResponse, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return nil, documenterrors.ErrInvalidDocumentID
	}
	did, err := uuid.Parse(id)
	if err != nil {
		return nil, documenterrors.ErrInvalidDocumentID
	}

	d, err := s.repo.FindByIDAndCompany(ctx, did, cid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, documenterrors.ErrDocumentNotFound
		}
		return nil, err
	}
	return mapToResponse(d), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return documenterrors.ErrInvalidDocumentID
	}
	did, err := uuid.Parse(id)
	if err != nil {
		return documenterrors.ErrInvalidDocumentID
	}
	return s.repo.Delete(ctx, did, cid)
}

func mapToResponse(d *Document) *DocumentResponse {
	resp := &DocumentResponse{
		ID:         d.ID.String(),
		EntityType: string(d.EntityType),
		EntityID:   d.EntityID.String(),
		FileName:   d.FileName,
		FileType:   d.FileType,
		FileSize:   d.FileSize,
		CreatedAt:  d.CreatedAt.Format(time.RFC3339),
	}
	if d.UploadedBy != uuid.Nil {
		resp.UploadedBy = d.UploadedBy.String()
	}
	return resp
}
