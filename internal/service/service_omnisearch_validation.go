package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-omnisearch/internal/validators"
	"github.com/MKhiriev/go-omnisearch/models"
)

// OmniSearchValidationService rejects arguments that can never succeed
// before they reach the wrapped service. Rejections match [ErrValidation].
type OmniSearchValidationService struct {
	inner     OmniSearchService
	validator validators.Validator
}

func NewOmniSearchValidationService() OmniSearchServiceWrapper {
	return &OmniSearchValidationService{
		validator: validators.NewQueryValidator(),
	}
}

func (v *OmniSearchValidationService) Wrap(wrapped OmniSearchService) OmniSearchService {
	v.inner = wrapped
	return v
}

func (v *OmniSearchValidationService) Hello(ctx context.Context) (any, error) {
	return v.inner.Hello(ctx)
}

func (v *OmniSearchValidationService) Languages(ctx context.Context) (any, error) {
	return v.inner.Languages(ctx)
}

func (v *OmniSearchValidationService) Records(ctx context.Context, q models.ListQuery) (any, error) {
	if err := v.validate(ctx, q); err != nil {
		return nil, err
	}
	return v.inner.Records(ctx, q)
}

func (v *OmniSearchValidationService) CreateRecord(ctx context.Context, record models.Record) (any, error) {
	if err := v.validate(ctx, record, validators.FieldRecordType); err != nil {
		return nil, err
	}
	return v.inner.CreateRecord(ctx, record)
}

func (v *OmniSearchValidationService) Record(ctx context.Context, recordID string) (any, error) {
	if err := v.validate(ctx, recordID, validators.FieldRecordID); err != nil {
		return nil, err
	}
	return v.inner.Record(ctx, recordID)
}

func (v *OmniSearchValidationService) UpdateRecord(ctx context.Context, recordID string, record models.Record) (any, error) {
	if err := v.validate(ctx, recordID, validators.FieldRecordID); err != nil {
		return nil, err
	}
	return v.inner.UpdateRecord(ctx, recordID, record)
}

func (v *OmniSearchValidationService) DeleteRecord(ctx context.Context, recordID string) (any, error) {
	if err := v.validate(ctx, recordID, validators.FieldRecordID); err != nil {
		return nil, err
	}
	return v.inner.DeleteRecord(ctx, recordID)
}

func (v *OmniSearchValidationService) RecordObjects(ctx context.Context, recordID string) (any, error) {
	if err := v.validate(ctx, recordID, validators.FieldRecordID); err != nil {
		return nil, err
	}
	return v.inner.RecordObjects(ctx, recordID)
}

func (v *OmniSearchValidationService) CreateRecordObjects(ctx context.Context, recordID string, objects models.Objects) (any, error) {
	if err := v.validate(ctx, recordID, validators.FieldRecordID); err != nil {
		return nil, err
	}
	return v.inner.CreateRecordObjects(ctx, recordID, objects)
}

func (v *OmniSearchValidationService) DeleteRecordObjects(ctx context.Context, recordID string) (any, error) {
	if err := v.validate(ctx, recordID, validators.FieldRecordID); err != nil {
		return nil, err
	}
	return v.inner.DeleteRecordObjects(ctx, recordID)
}

func (v *OmniSearchValidationService) RecordObject(ctx context.Context, recordID, objectType string) (any, error) {
	if err := v.validateObjectRef(ctx, recordID, objectType); err != nil {
		return nil, err
	}
	return v.inner.RecordObject(ctx, recordID, objectType)
}

func (v *OmniSearchValidationService) UpdateRecordObject(ctx context.Context, recordID, objectType string, object any) (any, error) {
	if err := v.validateObjectRef(ctx, recordID, objectType); err != nil {
		return nil, err
	}
	return v.inner.UpdateRecordObject(ctx, recordID, objectType, object)
}

func (v *OmniSearchValidationService) DeleteRecordObject(ctx context.Context, recordID, objectType string) (any, error) {
	if err := v.validateObjectRef(ctx, recordID, objectType); err != nil {
		return nil, err
	}
	return v.inner.DeleteRecordObject(ctx, recordID, objectType)
}

func (v *OmniSearchValidationService) RecordContent(ctx context.Context, recordID, objectType string) (any, error) {
	if err := v.validateObjectRef(ctx, recordID, objectType); err != nil {
		return nil, err
	}
	return v.inner.RecordContent(ctx, recordID, objectType)
}

func (v *OmniSearchValidationService) RecordTranscript(ctx context.Context, recordID, objectType string) (any, error) {
	if err := v.validateObjectRef(ctx, recordID, objectType); err != nil {
		return nil, err
	}
	return v.inner.RecordTranscript(ctx, recordID, objectType)
}

func (v *OmniSearchValidationService) Schema(ctx context.Context, q models.SchemaQuery) (any, error) {
	if err := v.validate(ctx, q); err != nil {
		return nil, err
	}
	return v.inner.Schema(ctx, q)
}

func (v *OmniSearchValidationService) Search(ctx context.Context, q models.SearchQuery) (any, error) {
	if err := v.validate(ctx, q); err != nil {
		return nil, err
	}
	return v.inner.Search(ctx, q)
}

func (v *OmniSearchValidationService) validate(ctx context.Context, obj any, fields ...string) error {
	if err := v.validator.Validate(ctx, obj, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

func (v *OmniSearchValidationService) validateObjectRef(ctx context.Context, recordID, objectType string) error {
	if err := v.validate(ctx, recordID, validators.FieldRecordID); err != nil {
		return err
	}
	return v.validate(ctx, objectType, validators.FieldObjectType)
}
