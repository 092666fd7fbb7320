package service

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/trinextgen/site-api/internal/infra/blob"
	"github.com/trinextgen/site-api/internal/modules/model"
)

// AttachmentInput is a file as sent by clients: inline base64 (or a data URI)
// in Data, or a reference to an attachment the record already holds when Data
// is empty.
type AttachmentInput struct {
	model.Attachment
	Data string `json:"data"`
}

var allowedMIME = map[string]string{
	"image/png":          ".png",
	"image/jpeg":         ".jpg",
	"image/gif":          ".gif",
	"image/webp":         ".webp",
	"image/svg+xml":      ".svg",
	"application/pdf":    ".pdf",
	"application/msword": ".doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
	"text/plain": ".txt",
}

type AttachmentService interface {
	// Store uploads in under prefix and returns the stored reference. A nil
	// input yields a nil attachment. Inputs without data must name the key of
	// one of known; the known record is returned as is.
	Store(ctx context.Context, prefix string, in *AttachmentInput, known ...model.Attachment) (*model.Attachment, error)
	StoreAll(ctx context.Context, prefix string, in []AttachmentInput, known ...model.Attachment) ([]model.Attachment, error)
	URL(ctx context.Context, key string) (string, error)
}

type AttachmentLimits struct {
	MaxImageBytes int64
	MaxFileBytes  int64
	PresignExpire time.Duration
}

type attachmentService struct {
	store  blob.Store
	limits AttachmentLimits
}

func NewAttachmentService(store blob.Store, limits AttachmentLimits) AttachmentService {
	if limits.MaxImageBytes <= 0 {
		limits.MaxImageBytes = 2 << 20
	}
	if limits.MaxFileBytes <= 0 {
		limits.MaxFileBytes = 5 << 20
	}
	if limits.PresignExpire <= 0 {
		limits.PresignExpire = 15 * time.Minute
	}
	return &attachmentService{store: store, limits: limits}
}

func (s *attachmentService) Store(ctx context.Context, prefix string, in *AttachmentInput, known ...model.Attachment) (*model.Attachment, error) {
	if in == nil {
		return nil, nil
	}
	if in.Data == "" {
		if in.Key == "" {
			return nil, nil
		}
		for _, k := range known {
			if k.Key == in.Key {
				return &k, nil
			}
		}
		return nil, invalid("attachment %q must be sent inline", in.Name)
	}

	mime, payload, err := splitInline(in.MIME, in.Data)
	if err != nil {
		return nil, err
	}
	ext, ok := allowedMIME[mime]
	if !ok {
		return nil, invalid("file type %q is not allowed", mime)
	}

	limit := s.limits.MaxFileBytes
	if strings.HasPrefix(mime, "image/") {
		limit = s.limits.MaxImageBytes
	}
	// reject on the encoded size before allocating the decoded body
	if int64(len(payload)) > int64(base64.StdEncoding.EncodedLen(int(limit))) {
		return nil, invalid("file %q exceeds %d bytes", in.Name, limit)
	}
	body, err := decodeBase64(payload)
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > limit {
		return nil, invalid("file %q exceeds %d bytes", in.Name, limit)
	}

	sum := sha256.Sum256(body)
	digest := hex.EncodeToString(sum[:])
	key := path.Join(prefix, time.Now().UTC().Format("2006/01/02"), uuid.NewString()+ext)

	meta, err := s.store.Put(ctx, key, mime, body, map[string]string{
		"sha256": digest,
		"name":   in.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", key, err)
	}

	return &model.Attachment{
		Name:   in.Name,
		MIME:   mime,
		SizeB:  meta.SizeB,
		SHA256: digest,
		Bucket: meta.Bucket,
		Key:    meta.Key,
	}, nil
}

func (s *attachmentService) StoreAll(ctx context.Context, prefix string, in []AttachmentInput, known ...model.Attachment) ([]model.Attachment, error) {
	out := make([]model.Attachment, 0, len(in))
	for i := range in {
		a, err := s.Store(ctx, prefix, &in[i], known...)
		if err != nil {
			return nil, err
		}
		if a != nil {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *attachmentService) URL(ctx context.Context, key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", invalid("key is required")
	}
	return s.store.PresignGet(ctx, key, s.limits.PresignExpire)
}

// splitInline accepts raw base64 or a data URI and returns the media type and
// the still encoded payload. The URI's media type wins over the declared one.
func splitInline(declared, data string) (string, string, error) {
	mime := strings.ToLower(strings.TrimSpace(declared))
	payload := strings.TrimSpace(data)

	if strings.HasPrefix(payload, "data:") {
		head, rest, ok := strings.Cut(payload, ",")
		if !ok || !strings.HasSuffix(head, ";base64") {
			return "", "", invalid("malformed data uri")
		}
		if t := strings.TrimSuffix(strings.TrimPrefix(head, "data:"), ";base64"); t != "" {
			mime = strings.ToLower(t)
		}
		payload = rest
	}
	if mime == "" {
		return "", "", invalid("mime type is required")
	}
	return mime, payload, nil
}

func decodeBase64(payload string) ([]byte, error) {
	body, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		if body, err = base64.RawStdEncoding.DecodeString(payload); err != nil {
			return nil, invalid("attachment is not valid base64")
		}
	}
	if len(body) == 0 {
		return nil, invalid("attachment is empty")
	}
	return body, nil
}
