package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Leganyst/tour-marketplace/internal/access"
	"github.com/Leganyst/tour-marketplace/internal/apperr"
	"github.com/Leganyst/tour-marketplace/internal/model"
	"github.com/Leganyst/tour-marketplace/internal/repository"
)

const tracerName = "github.com/Leganyst/tour-marketplace/internal/service"

// Call — контекст вызова, который передаёт окружение исполнения.
type Call struct {
	Caller string // аккаунт вызывающего
	Height int64  // логические часы (высота блока)
}

// Marketplace реализует все изменяющие операции маркетплейса и запросы на чтение.
//
// Изменяющие операции выполняются строго по одной (single-writer), каждая внутри
// одной транзакции GORM: все проверки идут до первой записи, а любая ошибка
// откатывает транзакцию целиком, включая выданные идентификаторы.
type Marketplace struct {
	mu sync.Mutex

	db        *gorm.DB
	authority access.Authority
	txOpts    []*sql.TxOptions

	newStore func(db *gorm.DB) *repository.Store
	now      func() time.Time
	tracer   trace.Tracer
}

type Option func(*Marketplace)

// WithSerializableTx запускает каждую операцию с изоляцией SERIALIZABLE.
func WithSerializableTx() Option {
	return func(m *Marketplace) {
		m.txOpts = []*sql.TxOptions{{Isolation: sql.LevelSerializable}}
	}
}

func NewMarketplace(db *gorm.DB, authority access.Authority, opts ...Option) *Marketplace {
	m := &Marketplace{
		db:        db,
		authority: authority,
		newStore:  repository.NewGormStore,
		now:       func() time.Time { return time.Now().UTC() },
		tracer:    otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// mutate допускает одну операцию за раз и выполняет fn в транзакции.
func (m *Marketplace) mutate(
	ctx context.Context,
	op string,
	call Call,
	fn func(ctx context.Context, st *repository.Store) error,
) error {
	ctx, span := m.tracer.Start(ctx, "marketplace."+op, trace.WithAttributes(
		attribute.String("marketplace.caller", call.Caller),
		attribute.Int64("marketplace.height", call.Height),
	))
	defer span.End()

	err := m.runTx(ctx, call, fn)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, string(apperr.CodeOf(err)))
	}
	return err
}

func (m *Marketplace) runTx(ctx context.Context, call Call, fn func(ctx context.Context, st *repository.Store) error) error {
	if err := access.ValidateCaller(call.Caller); err != nil {
		return apperr.Unauthorized(err.Error())
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, m.newStore(tx))
	}, m.txOpts...)
	if err == nil {
		return nil
	}

	var domainErr *apperr.Error
	if errors.As(err, &domainErr) {
		return err
	}
	return apperr.Internal("transaction", err)
}

// record дописывает событие в журнал аудита в той же транзакции.
func (m *Marketplace) record(
	ctx context.Context,
	st *repository.Store,
	call Call,
	eventType model.EventType,
	entityID string,
	details map[string]any,
) error {
	seq, err := st.Sequences.Next(ctx, model.SequenceEvent)
	if err != nil {
		return apperr.Internal("allocate event seq", err)
	}

	payload, err := json.Marshal(details)
	if err != nil {
		return apperr.Internal("encode event details", err)
	}

	event := &model.Event{
		ID:         uuid.New(),
		Seq:        seq,
		EventType:  eventType,
		Actor:      call.Caller,
		EntityID:   entityID,
		Height:     call.Height,
		RecordedAt: m.now(),
		Details:    datatypes.JSON(payload),
	}
	if err := st.Events.Append(ctx, event); err != nil {
		return apperr.Internal("append event", err)
	}
	return nil
}

func idString(id uint64) string {
	return strconv.FormatUint(id, 10)
}

// allocate выдаёт следующий id последовательности.
func allocate(ctx context.Context, st *repository.Store, name string) (uint64, error) {
	id, err := st.Sequences.Next(ctx, name)
	if err != nil {
		return 0, apperr.Internal("allocate "+name+" id", err)
	}
	return id, nil
}

// lookupErr переводит ошибку чтения в NotFound или Internal.
func lookupErr(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(what + " not found")
	}
	return apperr.Internal("load "+what, err)
}

func storeErr(err error, what string) error {
	return apperr.Internal("store "+what, err)
}

func logOp(op string, call Call, format string, args ...any) {
	log.Printf("marketplace: %s by %s at %d: %s", op, call.Caller, call.Height, fmt.Sprintf(format, args...))
}

// Ready проверяет доступность хранилища.
func (m *Marketplace) Ready(ctx context.Context) error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
