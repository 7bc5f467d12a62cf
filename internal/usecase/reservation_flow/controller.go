package reservation_flow

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-KartingFront/internal/domain"
	"github.com/m04kA/SMC-KartingFront/internal/integrations/kartingbackend"
)

// Dependencies зависимости контроллера потока
type Dependencies struct {
	ReservedTimes ReservedTimesService
	Engine        AvailabilityEngine
	Backend       BackendClient
	Metrics       Metrics
	TimeProvider  TimeProvider
	Logger        Logger
}

// slotsState состояние загрузки интервалов; generation растет с каждым выбором даты
type slotsState struct {
	date       time.Time
	generation uint64
	loading    bool
	ready      bool
	reserved   []domain.ReservedInterval
}

// Controller поток бронирования одного черновика.
// Мутации сериализуются мьютексом, сетевые вызовы выполняются без блокировки
type Controller struct {
	id   string
	deps Dependencies

	mu           sync.Mutex
	step         Step
	draft        domain.BookingDraft
	slots        slotsState
	lastError    *StepError
	bookingID    int64
	submitting   bool
	lastActivity time.Time
}

// NewController создает поток с пустым черновиком на шаге ActivityDetails
func NewController(id string, deps Dependencies) *Controller {
	if deps.Metrics == nil {
		deps.Metrics = nopMetrics{}
	}
	if deps.TimeProvider == nil {
		deps.TimeProvider = &RealTimeProvider{}
	}
	return &Controller{
		id:           id,
		deps:         deps,
		step:         StepActivityDetails,
		draft:        domain.NewBookingDraft(),
		lastActivity: deps.TimeProvider.Now(),
	}
}

// ID идентификатор черновика
func (c *Controller) ID() string {
	return c.id
}

// LastActivity время последней операции над черновиком
func (c *Controller) LastActivity() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastActivity
}

// State возвращает снимок потока
func (c *Controller) State() *State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// SetActivity задает продукт и количество участников (шаг ActivityDetails).
// Если выбранное время стало недоступным для новой длительности, оно сбрасывается
func (c *Controller) SetActivity(req ActivityRequest) (*State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch()

	if err := c.requireStep(StepActivityDetails); err != nil {
		return c.snapshot(), err
	}

	if fields := validateActivity(req.SessionProduct, req.ParticipantCount); len(fields) > 0 {
		return c.snapshot(), newValidationError(StepActivityDetails, fields)
	}

	if req.ParticipantCount < c.draft.ParticipantsLen() {
		return c.snapshot(), newValidationError(StepActivityDetails, FieldErrors{
			"participantCount": fmt.Sprintf("remove participants first: %d already added", c.draft.ParticipantsLen()),
		})
	}

	c.draft = c.draft.WithActivity(domain.SessionProduct(req.SessionProduct), req.ParticipantCount)
	c.lastError = nil

	// Длительность могла измениться - пересчитываем вычисленные окончания
	// интервалов и доступность выбранного времени
	if c.slots.ready {
		duration := c.blockDuration()
		for i, r := range c.slots.reserved {
			c.slots.reserved[i] = r.WithDuration(duration)
		}

		if c.draft.HasStartTime() && c.deps.Engine.IsSlotBlocked(c.draft.StartAt(), duration, c.slots.reserved) {
			c.deps.Logger.Info("ReservationFlow %s: start time %s no longer fits %d minutes, reset",
				c.id, c.draft.StartTime, duration)
			c.draft = c.draft.WithoutStartTime()
		}
	}

	return c.snapshot(), nil
}

// SelectDate выбирает дату и загружает занятые интервалы (шаг DateAndTime).
// Пока загрузка идет, выбор времени недоступен. Если за время загрузки выбрана
// другая дата, ответ отбрасывается с ErrStaleResponse
func (c *Controller) SelectDate(ctx context.Context, date time.Time) (*State, error) {
	c.mu.Lock()
	c.touch()

	if err := c.requireStep(StepDateAndTime); err != nil {
		defer c.mu.Unlock()
		return c.snapshot(), err
	}

	if date.IsZero() {
		defer c.mu.Unlock()
		return c.snapshot(), newValidationError(StepDateAndTime, FieldErrors{"date": "date is required"})
	}

	if isDateInPast(date, c.deps.TimeProvider.Now()) {
		defer c.mu.Unlock()
		return c.snapshot(), newValidationError(StepDateAndTime, FieldErrors{"date": "date is in the past"})
	}

	c.draft = c.draft.WithDate(date)
	c.slots = slotsState{
		date:       c.draft.Date,
		generation: c.slots.generation + 1,
		loading:    true,
	}
	c.lastError = nil

	generation := c.slots.generation
	requested := c.draft.Date
	duration := c.blockDuration()
	c.mu.Unlock()

	reserved, fetchErr := c.deps.ReservedTimes.Fetch(ctx, requested, duration)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.slots.generation != generation || !c.slots.date.Equal(requested) || c.step.IsTerminal() {
		c.deps.Metrics.IncStaleResponses()
		c.deps.Logger.Info("ReservationFlow %s: discarded reserved times for %s, current date %s",
			c.id, requested.Format(domain.DateFormat), c.slots.date.Format(domain.DateFormat))
		return c.snapshot(), ErrStaleResponse
	}

	c.slots.loading = false

	if fetchErr != nil {
		c.deps.Logger.Warn("ReservationFlow %s: failed to load reserved times for %s: %v",
			c.id, requested.Format(domain.DateFormat), fetchErr)
		c.lastError = &StepError{
			Kind:    ErrorKindNetwork,
			Step:    StepDateAndTime,
			Message: fetchErr.Error(),
		}
		return c.snapshot(), fmt.Errorf("%w: %v", ErrBackendUnavailable, fetchErr)
	}

	// Длительность могла смениться за время загрузки
	current := c.blockDuration()
	rescaled := make([]domain.ReservedInterval, len(reserved))
	for i, r := range reserved {
		rescaled[i] = r.WithDuration(current)
	}

	c.slots.ready = true
	c.slots.reserved = rescaled

	c.deps.Logger.Info("ReservationFlow %s: date=%s, reserved intervals=%d",
		c.id, requested.Format(domain.DateFormat), len(reserved))
	return c.snapshot(), nil
}

// SelectTime выбирает время старта на выбранную дату (шаг DateAndTime)
func (c *Controller) SelectTime(req TimeRequest) (*State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch()

	if err := c.requireStep(StepDateAndTime); err != nil {
		return c.snapshot(), err
	}

	if err := req.StartTime.Validate(); err != nil {
		return c.snapshot(), newValidationError(StepDateAndTime, FieldErrors{"startTime": "must be HH:MM"})
	}

	if !c.draft.HasDate() {
		return c.snapshot(), newValidationError(StepDateAndTime, FieldErrors{"date": "date is required"})
	}

	if c.slots.loading {
		return c.snapshot(), ErrSlotsLoading
	}
	if !c.slots.ready {
		return c.snapshot(), ErrSlotsNotLoaded
	}

	candidate := req.StartTime.On(c.draft.Date)
	if c.deps.Engine.IsSlotBlocked(candidate, c.blockDuration(), c.slots.reserved) {
		return c.snapshot(), fmt.Errorf("%w: %s", ErrSlotBlocked, req.StartTime)
	}

	c.draft = c.draft.WithStartTime(req.StartTime)
	c.lastError = nil
	return c.snapshot(), nil
}

// AddParticipant добавляет участника (шаг Participants)
func (c *Controller) AddParticipant(req ParticipantRequest) (*State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch()

	if err := c.requireStep(StepParticipants); err != nil {
		return c.snapshot(), err
	}

	if c.draft.ParticipantsLen() >= c.draft.ParticipantCount {
		return c.snapshot(), fmt.Errorf("%w: %d of %d", ErrParticipantLimit, c.draft.ParticipantsLen(), c.draft.ParticipantCount)
	}

	p := normalizeParticipant(req)
	if fields := validateParticipant(p); len(fields) > 0 {
		return c.snapshot(), newValidationError(StepParticipants, fields)
	}

	c.draft = c.draft.WithParticipant(p)
	if c.lastError != nil && c.lastError.Step == StepParticipants {
		c.lastError = nil
	}
	return c.snapshot(), nil
}

// RemoveParticipant удаляет участника по позиции (шаг Participants)
func (c *Controller) RemoveParticipant(index int) (*State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch()

	if err := c.requireStep(StepParticipants); err != nil {
		return c.snapshot(), err
	}

	if index < 0 || index >= c.draft.ParticipantsLen() {
		return c.snapshot(), fmt.Errorf("%w: index %d", ErrParticipantNotFound, index)
	}

	c.draft = c.draft.WithoutParticipant(index)
	return c.snapshot(), nil
}

// Next переходит на следующий шаг, если выполнено условие перехода
func (c *Controller) Next() (*State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch()

	tr, ok := transitions[c.step]
	if !ok || tr.next == 0 {
		return c.snapshot(), fmt.Errorf("%w: no next step from %s", ErrIllegalTransition, c.step)
	}

	if c.step == StepDateAndTime && c.slots.loading {
		return c.snapshot(), ErrSlotsLoading
	}

	if err := tr.guard(c.draft); err != nil {
		return c.snapshot(), err
	}

	c.deps.Logger.Info("ReservationFlow %s: %s -> %s", c.id, c.step, tr.next)
	c.step = tr.next
	return c.snapshot(), nil
}

// Back возвращается на предыдущий шаг. Данные черновика сохраняются
func (c *Controller) Back() (*State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch()

	tr, ok := transitions[c.step]
	if !ok || tr.back == 0 {
		return c.snapshot(), fmt.Errorf("%w: no previous step from %s", ErrIllegalTransition, c.step)
	}

	if c.submitting {
		return c.snapshot(), ErrSubmitInProgress
	}

	c.deps.Logger.Info("ReservationFlow %s: %s <- %s", c.id, tr.back, c.step)
	c.step = tr.back
	return c.snapshot(), nil
}

// Submit отправляет черновик в бэкенд (шаг Review).
// При отказе бэкенда поток возвращается на шаг, к которому относится ошибка; черновик сохраняется
func (c *Controller) Submit(ctx context.Context) (*State, error) {
	c.mu.Lock()
	c.touch()

	if err := c.requireStep(StepReview); err != nil {
		defer c.mu.Unlock()
		return c.snapshot(), err
	}

	if c.submitting {
		defer c.mu.Unlock()
		return c.snapshot(), ErrSubmitInProgress
	}

	if err := guardSubmit(c.draft); err != nil {
		defer c.mu.Unlock()
		return c.snapshot(), err
	}

	req, err := kartingbackend.NewSubmitBookingRequest(c.draft)
	if err != nil {
		defer c.mu.Unlock()
		return c.snapshot(), fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	c.submitting = true
	c.mu.Unlock()

	booking, submitErr := c.deps.Backend.SubmitBooking(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitting = false

	if submitErr != nil {
		if ve, ok := kartingbackend.AsValidationError(submitErr); ok {
			step, field := routeBackendError(ve.Code, ve.Message)
			c.deps.Logger.Warn("ReservationFlow %s: backend rejected booking, routed to %s/%s: %s",
				c.id, step, field, ve.Message)
			c.lastError = &StepError{
				Kind:    ErrorKindBackend,
				Step:    step,
				Field:   field,
				Message: ve.Message,
			}
			if !c.step.IsTerminal() {
				c.step = step
			}
			return c.snapshot(), fmt.Errorf("%w: %s", ErrBackendRejected, ve.Message)
		}

		c.deps.Logger.Error("ReservationFlow %s: failed to submit booking: %v", c.id, submitErr)
		c.lastError = &StepError{
			Kind:    ErrorKindNetwork,
			Step:    StepReview,
			Message: submitErr.Error(),
		}
		return c.snapshot(), fmt.Errorf("%w: %v", ErrBackendUnavailable, submitErr)
	}

	c.bookingID = booking.ID
	c.lastError = nil
	c.step = StepSubmitted

	c.deps.Logger.Info("ReservationFlow %s: submitted, booking id=%d", c.id, booking.ID)
	return c.snapshot(), nil
}

// Abandon завершает поток без отправки. Во время отправки недоступен
func (c *Controller) Abandon() (*State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch()

	if c.step == StepSubmitted {
		return c.snapshot(), fmt.Errorf("%w: booking already submitted", ErrIllegalTransition)
	}
	if c.submitting {
		return c.snapshot(), ErrSubmitInProgress
	}

	c.step = StepAbandoned
	c.deps.Logger.Info("ReservationFlow %s: abandoned", c.id)
	return c.snapshot(), nil
}

// requireStep проверяет текущий шаг. Вызывается под мьютексом
func (c *Controller) requireStep(step Step) error {
	if c.step != step {
		return fmt.Errorf("%w: current step is %s, expected %s", ErrWrongStep, c.step, step)
	}
	return nil
}

// blockDuration длительность блока текущего продукта, 0 если продукт не выбран
func (c *Controller) blockDuration() int {
	d, err := c.draft.SessionProduct.BlockDuration()
	if err != nil {
		return 0
	}
	return d
}

func (c *Controller) touch() {
	c.lastActivity = c.deps.TimeProvider.Now()
}

// snapshot копирует состояние. Вызывается под мьютексом
func (c *Controller) snapshot() *State {
	reserved := make([]domain.ReservedInterval, len(c.slots.reserved))
	copy(reserved, c.slots.reserved)

	var lastErr *StepError
	if c.lastError != nil {
		e := *c.lastError
		lastErr = &e
	}

	return &State{
		ID:              c.id,
		Step:            c.step,
		Draft:           c.draft,
		DurationMinutes: c.blockDuration(),
		Slots: SlotsState{
			Date:     c.slots.date,
			Loading:  c.slots.loading,
			Ready:    c.slots.ready,
			Reserved: reserved,
		},
		LastError: lastErr,
		BookingID: c.bookingID,
	}
}

// IsNetworkError возвращает true для ошибок недоступности бэкенда
func IsNetworkError(err error) bool {
	return errors.Is(err, ErrBackendUnavailable)
}
