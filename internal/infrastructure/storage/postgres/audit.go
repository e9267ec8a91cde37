package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/klauspost/compress/zstd"

	"colibri/internal/core/id"
	"colibri/internal/domain/audit"
	"colibri/pkg/logger"

	appctx "colibri/internal/core/context"
)

// CompressionAlgo specifies the compression algorithm used for a row.
type CompressionAlgo string

const (
	CompressionNone CompressionAlgo = "none"
	CompressionZstd CompressionAlgo = "zstd"
)

// AuditService writes the mutation trail to sys_audit. It implements
// audit.Recorder: failures are logged and swallowed, never propagated.
type AuditService struct {
	txManager         *TxManager
	encoder           *zstd.Encoder
	decoder           *zstd.Decoder
	compressThreshold int // bytes
}

// NewAuditService creates a database-backed audit recorder.
func NewAuditService(txManager *TxManager) (*AuditService, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	return &AuditService{
		txManager:         txManager,
		encoder:           encoder,
		decoder:           decoder,
		compressThreshold: 10 * 1024,
	}, nil
}

var _ audit.Recorder = (*AuditService)(nil)

// Record implements audit.Recorder.
func (s *AuditService) Record(ctx context.Context, entry audit.Entry) {
	changes, err := json.Marshal(entry.Changes)
	if err != nil {
		logger.Error(ctx, "marshal audit changes", "error", err)
		return
	}

	var compressed []byte
	algo := CompressionNone
	if len(changes) > s.compressThreshold {
		compressed = s.encoder.EncodeAll(changes, nil)
		changes = nil
		algo = CompressionZstd
	}

	_, err = s.txManager.GetQuerier(ctx).Exec(ctx, `
        INSERT INTO sys_audit (
            id, entity_type, entity_key, action, user_id,
            changes, changes_compressed, compression_algo, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		id.New(), entry.EntityType, entry.EntityKey, string(entry.Action),
		appctx.GetUserID(ctx), changes, compressed, algo, time.Now().UTC(),
	)
	if err != nil {
		logger.Error(ctx, "write audit entry failed",
			"entity_type", entry.EntityType,
			"entity_key", entry.EntityKey,
			"error", err)
	}
}

var _ audit.Reader = (*AuditService)(nil)

// ListByEntity implements audit.Reader: the trail for one record, newest
// first, changes decompressed. Runs in a read-only transaction.
func (s *AuditService) ListByEntity(ctx context.Context, entityType, entityKey string, limit int) ([]audit.Row, error) {
	if limit <= 0 {
		limit = 50
	}

	var out []audit.Row
	err := s.txManager.ReadOnly(ctx, func(ctx context.Context) error {
		rows, err := s.txManager.GetQuerier(ctx).Query(ctx, `
        SELECT id, entity_type, entity_key, action, user_id,
               changes, changes_compressed, compression_algo, created_at
        FROM sys_audit
        WHERE entity_type = $1 AND entity_key = $2
        ORDER BY created_at DESC
        LIMIT $3
		`, entityType, entityKey, limit)
		if err != nil {
			return fmt.Errorf("query audit: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var (
				r          audit.Row
				compressed []byte
				algo       CompressionAlgo
			)
			if err := rows.Scan(
				&r.ID, &r.EntityType, &r.EntityKey, &r.Action, &r.UserID,
				&r.Changes, &compressed, &algo, &r.CreatedAt,
			); err != nil {
				return fmt.Errorf("scan audit row: %w", err)
			}

			if algo == CompressionZstd {
				decompressed, err := s.decoder.DecodeAll(compressed, nil)
				if err != nil {
					return fmt.Errorf("decompress changes: %w", err)
				}
				r.Changes = decompressed
			}
			out = append(out, r)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
