package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-omnisearch/internal/adapter"
	"github.com/MKhiriev/go-omnisearch/internal/logger"
	"github.com/MKhiriev/go-omnisearch/models"
)

const deletedMessage = "record deleted"

type omniSearchService struct {
	transport adapter.Transport

	logger *logger.Logger
}

func NewOmniSearchService(transport adapter.Transport, logger *logger.Logger) OmniSearchService {
	return &omniSearchService{
		transport: transport,
		logger:    logger,
	}
}

func (s *omniSearchService) Hello(ctx context.Context) (any, error) {
	return s.transport.Request(ctx, http.MethodGet, "/hello", nil, nil)
}

func (s *omniSearchService) Languages(ctx context.Context) (any, error) {
	return s.transport.Request(ctx, http.MethodGet, "/languages", nil, nil)
}

func (s *omniSearchService) Records(ctx context.Context, q models.ListQuery) (any, error) {
	return s.call(ctx, http.MethodGet, "/records", nil, q.Params())
}

func (s *omniSearchService) CreateRecord(ctx context.Context, record models.Record) (any, error) {
	return s.call(ctx, http.MethodPost, "/records", record, nil)
}

func (s *omniSearchService) Record(ctx context.Context, recordID string) (any, error) {
	return s.call(ctx, http.MethodGet, recordPath(recordID), nil, nil)
}

func (s *omniSearchService) UpdateRecord(ctx context.Context, recordID string, record models.Record) (any, error) {
	result, err := s.call(ctx, http.MethodPatch, recordPath(recordID), record, nil)
	if err != nil {
		return nil, err
	}

	doc, _ := result.(models.Document)
	if !isTruthy(doc["modified"]) {
		s.logger.Debug().Str("record_id", recordID).Msg("update response without modified flag")
		return nil, ErrNotModified
	}
	return result, nil
}

func (s *omniSearchService) DeleteRecord(ctx context.Context, recordID string) (any, error) {
	result, err := s.call(ctx, http.MethodDelete, recordPath(recordID), nil, nil)
	if err != nil {
		return nil, err
	}

	if doc, ok := result.(models.Document); ok {
		if msg, present := doc["message"]; present {
			text, _ := msg.(string)
			if strings.ToLower(text) != deletedMessage {
				s.logger.Debug().Str("record_id", recordID).Interface("message", msg).Msg("unexpected delete response")
				return nil, ErrNotDeleted
			}
		}
	}
	return result, nil
}

func (s *omniSearchService) RecordObjects(ctx context.Context, recordID string) (any, error) {
	return s.call(ctx, http.MethodGet, objectsPath(recordID), nil, nil)
}

func (s *omniSearchService) CreateRecordObjects(ctx context.Context, recordID string, objects models.Objects) (any, error) {
	if objects == nil {
		objects = models.Objects{}
	}
	return s.call(ctx, http.MethodPost, objectsPath(recordID), models.ObjectsRequest{Objects: objects}, nil)
}

func (s *omniSearchService) DeleteRecordObjects(ctx context.Context, recordID string) (any, error) {
	return s.call(ctx, http.MethodDelete, objectsPath(recordID), nil, nil)
}

func (s *omniSearchService) RecordObject(ctx context.Context, recordID, objectType string) (any, error) {
	return s.call(ctx, http.MethodGet, objectPath(recordID, objectType), nil, nil)
}

func (s *omniSearchService) UpdateRecordObject(ctx context.Context, recordID, objectType string, object any) (any, error) {
	return s.call(ctx, http.MethodPut, objectPath(recordID, objectType), object, nil)
}

func (s *omniSearchService) DeleteRecordObject(ctx context.Context, recordID, objectType string) (any, error) {
	return s.call(ctx, http.MethodDelete, objectPath(recordID, objectType), nil, nil)
}

func (s *omniSearchService) RecordContent(ctx context.Context, recordID, objectType string) (any, error) {
	return s.call(ctx, http.MethodGet, objectPath(recordID, objectType)+"/content", nil, nil)
}

func (s *omniSearchService) RecordTranscript(ctx context.Context, recordID, objectType string) (any, error) {
	return s.call(ctx, http.MethodGet, objectPath(recordID, objectType)+"/transcript", nil, nil)
}

func (s *omniSearchService) Schema(ctx context.Context, q models.SchemaQuery) (any, error) {
	return s.call(ctx, http.MethodGet, "/schema/"+url.PathEscape(q.RecordType), nil, q.Params())
}

func (s *omniSearchService) Search(ctx context.Context, q models.SearchQuery) (any, error) {
	path := "/search/" + url.PathEscape(q.RecordType)
	if q.Detailed {
		path += "/detailed"
	}
	return s.call(ctx, http.MethodGet, path, nil, q.Params())
}

// call performs the request and classifies a failure. The payload is nil
// whenever the error is not.
func (s *omniSearchService) call(ctx context.Context, method, path string, body any, params models.Params) (any, error) {
	result, err := s.transport.Request(ctx, method, path, body, params)
	if err != nil {
		s.logger.Debug().Err(err).Str("method", method).Str("path", path).Msg("remote call failed")
		return nil, mapTransportError(err)
	}
	return result, nil
}

func recordPath(recordID string) string {
	return "/records/" + url.PathEscape(recordID)
}

func objectsPath(recordID string) string {
	return recordPath(recordID) + "/objects"
}

func objectPath(recordID, objectType string) string {
	return objectsPath(recordID) + "/" + url.PathEscape(objectType)
}

// isTruthy follows JSON truthiness: false, null, 0, "" and empty
// containers are false.
func isTruthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case json.Number:
		f, err := val.Float64()
		return err != nil || f != 0
	case float64:
		return val != 0
	case []any:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	default:
		return true
	}
}
