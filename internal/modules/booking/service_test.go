package booking

import (
	"context"
	"testing"
	"time"

	"moorehotels/internal/domain"
	"moorehotels/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByCode(ctx context.Context, code string) (*domain.Booking, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) HasOverlap(ctx context.Context, roomID int64, start, end time.Time) (bool, error) {
	args := m.Called(ctx, roomID, start, end)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockGuestDirectory struct {
	mock.Mock
}

func (m *MockGuestDirectory) Resolve(ctx context.Context, email, firstName, lastName, phone string) (*domain.Guest, error) {
	args := m.Called(ctx, email, firstName, lastName, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Guest), args.Error(1)
}

func (m *MockGuestDirectory) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Guest), args.Error(1)
}

type MockStayRecorder struct {
	mock.Mock
}

func (m *MockStayRecorder) Add(ctx context.Context, rec *domain.StayRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

type MockAuditSink struct {
	mock.Mock
}

func (m *MockAuditSink) Record(ctx context.Context, actorID int64, actorName, action, entityType, entityID string, before, after any) {
	m.Called(ctx, actorID, actorName, action, entityType, entityID, before, after)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) BookingCreated(b *domain.Booking, guest *domain.Guest, room *domain.Room) {
	m.Called(b, guest, room)
}

func (m *MockNotificationSender) BookingCancelled(b *domain.Booking, guest *domain.Guest, roomName, reason string) {
	m.Called(b, guest, roomName, reason)
}

func (m *MockNotificationSender) RefundRequired(b *domain.Booking, guest *domain.Guest, roomName string) {
	m.Called(b, guest, roomName)
}

func (m *MockNotificationSender) CheckedOut(b *domain.Booking, guest *domain.Guest) {
	m.Called(b, guest)
}

type stubAdvisor struct{}

func (stubAdvisor) GatewayLink(code string, amount float64, email string) string {
	return "https://pay.example/" + code
}

func (stubAdvisor) TransferInstructions() string { return "Bank details" }

type testEnv struct {
	bookings *MockBookingRepository
	rooms    *MockRoomRepository
	guests   *MockGuestDirectory
	stays    *MockStayRecorder
	audit    *MockAuditSink
	notifs   *MockNotificationSender
	service  *Service
}

func newTestEnv(now time.Time) *testEnv {
	env := &testEnv{
		bookings: new(MockBookingRepository),
		rooms:    new(MockRoomRepository),
		guests:   new(MockGuestDirectory),
		stays:    new(MockStayRecorder),
		audit:    new(MockAuditSink),
		notifs:   new(MockNotificationSender),
	}
	env.service = NewService(env.bookings, env.rooms, env.guests, env.stays, env.audit, env.notifs, stubAdvisor{})
	env.service.now = func() time.Time { return now }
	return env
}

func testRoom() *domain.Room {
	return &domain.Room{
		ID:            10,
		RoomNumber:    "101",
		Name:          "Standard Room 1",
		Status:        domain.RoomAvailable,
		PricePerNight: 100,
		IsOnline:      true,
	}
}

func testGuest() *domain.Guest {
	return &domain.Guest{
		ID:        "GS-ABC123",
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Phone:     "+123456",
	}
}

func createReq() CreateBookingRequest {
	return CreateBookingRequest{
		RoomID:         10,
		GuestFirstName: "John",
		GuestLastName:  "Doe",
		GuestEmail:     "john@example.com",
		GuestPhone:     "+123456",
		CheckIn:        "2026-10-10",
		CheckOut:       "2026-10-12",
		PaymentMethod:  domain.MethodGateway,
	}
}

func TestService_Create_Success(t *testing.T) {
	env := newTestEnv(time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC))

	env.rooms.On("GetByID", mock.Anything, int64(10)).Return(testRoom(), nil)
	env.guests.On("Resolve", mock.Anything, "john@example.com", "John", "Doe", "+123456").Return(testGuest(), nil)
	env.bookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	env.audit.On("Record", mock.Anything, int64(0), "John Doe", "BOOKING_CREATED", "Booking", mock.Anything, mock.Anything, mock.Anything).Return()
	env.notifs.On("BookingCreated", mock.Anything, mock.Anything, mock.Anything).Return()

	resp, err := env.service.Create(context.Background(), createReq())

	assert.NoError(t, err)
	b := resp.Booking
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, domain.PaymentUnpaid, b.PaymentStatus)
	// two nights at 100
	assert.Equal(t, 200.0, b.Amount)
	assert.Regexp(t, `^MHS-[0-9A-F]{8}$`, b.BookingCode)
	assert.Equal(t, 15, b.CheckIn.Hour())
	assert.Equal(t, 11, b.CheckOut.Hour())
	assert.Len(t, b.History, 1)
	assert.Equal(t, domain.EventCreated, b.History[0].Event)
	assert.Equal(t, "https://pay.example/"+b.BookingCode, resp.PaymentURL)
	assert.Empty(t, resp.PaymentInstruction)
}

func TestService_Create_DirectTransfer(t *testing.T) {
	env := newTestEnv(time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC))

	env.rooms.On("GetByID", mock.Anything, int64(10)).Return(testRoom(), nil)
	env.guests.On("Resolve", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(testGuest(), nil)
	env.bookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	env.audit.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()
	env.notifs.On("BookingCreated", mock.Anything, mock.Anything, mock.Anything).Return()

	req := createReq()
	req.PaymentMethod = domain.MethodDirectTransfer

	resp, err := env.service.Create(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentAwaitingVerification, resp.Booking.PaymentStatus)
	assert.Equal(t, "Bank details", resp.PaymentInstruction)
	assert.Empty(t, resp.PaymentURL)
}

func TestService_Create_SameDayRange(t *testing.T) {
	env := newTestEnv(time.Now().UTC())

	req := createReq()
	req.CheckOut = req.CheckIn

	_, err := env.service.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Create_BadDate(t *testing.T) {
	env := newTestEnv(time.Now().UTC())

	req := createReq()
	req.CheckIn = "10/10/2026"

	_, err := env.service.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Create_MissingContact(t *testing.T) {
	env := newTestEnv(time.Now().UTC())

	req := createReq()
	req.GuestPhone = "  "

	_, err := env.service.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Create_RoomNotFound(t *testing.T) {
	env := newTestEnv(time.Now().UTC())

	env.rooms.On("GetByID", mock.Anything, int64(10)).Return(nil, gorm.ErrRecordNotFound)

	_, err := env.service.Create(context.Background(), createReq())
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestService_Create_RoomUnderMaintenance(t *testing.T) {
	env := newTestEnv(time.Now().UTC())

	room := testRoom()
	room.Status = domain.RoomMaintenance
	env.rooms.On("GetByID", mock.Anything, int64(10)).Return(room, nil)

	_, err := env.service.Create(context.Background(), createReq())
	assert.ErrorIs(t, err, ErrRoomOffline)
}

func TestService_Create_OverlapConflict(t *testing.T) {
	env := newTestEnv(time.Now().UTC())

	env.rooms.On("GetByID", mock.Anything, int64(10)).Return(testRoom(), nil)
	env.guests.On("Resolve", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(testGuest(), nil)
	env.bookings.On("Create", mock.Anything, mock.Anything).Return(repository.ErrOverlap)

	_, err := env.service.Create(context.Background(), createReq())
	assert.ErrorIs(t, err, ErrConflict)
}

func TestService_Create_ExclusionConstraintConflict(t *testing.T) {
	env := newTestEnv(time.Now().UTC())

	env.rooms.On("GetByID", mock.Anything, int64(10)).Return(testRoom(), nil)
	env.guests.On("Resolve", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(testGuest(), nil)
	pgErr := &pgconn.PgError{Code: "23P01", ConstraintName: "idx_no_overbooking"}
	env.bookings.On("Create", mock.Anything, mock.Anything).Return(pgErr)

	_, err := env.service.Create(context.Background(), createReq())
	assert.ErrorIs(t, err, ErrConflict)
}

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:            1,
		BookingCode:   "MHS-DEADBEEF",
		RoomID:        10,
		GuestID:       "GS-ABC123",
		CheckIn:       time.Date(2026, 10, 10, 15, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2026, 10, 12, 11, 0, 0, 0, time.UTC),
		Status:        domain.BookingConfirmed,
		Amount:        200,
		PaymentStatus: domain.PaymentPaid,
		History: []domain.HistoryEntry{
			{Event: domain.EventCreated},
			{Event: domain.EventPaymentConfirmed},
		},
	}
}

func TestService_CheckIn_Success(t *testing.T) {
	env := newTestEnv(time.Date(2026, 10, 10, 16, 0, 0, 0, time.UTC))
	b := confirmedBooking()

	env.bookings.On("GetByID", mock.Anything, int64(1)).Return(b, nil)
	env.bookings.On("Update", mock.Anything, b).Return(nil)
	env.rooms.On("UpdateStatus", mock.Anything, int64(10), domain.RoomOccupied).Return(nil)
	env.rooms.On("GetByID", mock.Anything, int64(10)).Return(testRoom(), nil)
	env.guests.On("GetByID", mock.Anything, "GS-ABC123").Return(testGuest(), nil)
	env.stays.On("Add", mock.Anything, mock.MatchedBy(func(rec *domain.StayRecord) bool {
		return rec.Action == domain.StayCheckIn && rec.AuthorizedBy == "Amina"
	})).Return(nil)
	env.audit.On("Record", mock.Anything, int64(7), "Amina", "LIFECYCLE_TRANSITION", "Booking", "MHS-DEADBEEF", mock.Anything, mock.Anything).Return()

	got, err := env.service.TransitionStatus(context.Background(), 1, domain.BookingCheckedIn, Actor{ID: 7, Name: "Amina"})

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCheckedIn, got.Status)
	assert.Equal(t, domain.EventCheckedIn, got.History[len(got.History)-1].Event)
	env.rooms.AssertCalled(t, "UpdateStatus", mock.Anything, int64(10), domain.RoomOccupied)
	env.stays.AssertExpectations(t)
}

func TestService_CheckIn_TooEarly(t *testing.T) {
	// The day before arrival, even late in the evening.
	env := newTestEnv(time.Date(2026, 10, 9, 23, 0, 0, 0, time.UTC))
	env.bookings.On("GetByID", mock.Anything, int64(1)).Return(confirmedBooking(), nil)

	_, err := env.service.TransitionStatus(context.Background(), 1, domain.BookingCheckedIn, Actor{Name: "Amina"})
	assert.ErrorIs(t, err, ErrEarlyCheckIn)
}

func TestService_CheckIn_SameDayBeforeThreePM(t *testing.T) {
	// Morning of the arrival day is allowed; the desk decides.
	env := newTestEnv(time.Date(2026, 10, 10, 9, 0, 0, 0, time.UTC))
	b := confirmedBooking()

	env.bookings.On("GetByID", mock.Anything, int64(1)).Return(b, nil)
	env.bookings.On("Update", mock.Anything, b).Return(nil)
	env.rooms.On("UpdateStatus", mock.Anything, int64(10), domain.RoomOccupied).Return(nil)
	env.rooms.On("GetByID", mock.Anything, int64(10)).Return(testRoom(), nil)
	env.guests.On("GetByID", mock.Anything, "GS-ABC123").Return(testGuest(), nil)
	env.stays.On("Add", mock.Anything, mock.Anything).Return(nil)
	env.audit.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()

	got, err := env.service.TransitionStatus(context.Background(), 1, domain.BookingCheckedIn, Actor{Name: "Amina"})
	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCheckedIn, got.Status)
}

func TestService_CheckIn_Expired(t *testing.T) {
	env := newTestEnv(time.Date(2026, 10, 12, 12, 0, 0, 0, time.UTC))
	env.bookings.On("GetByID", mock.Anything, int64(1)).Return(confirmedBooking(), nil)

	_, err := env.service.TransitionStatus(context.Background(), 1, domain.BookingCheckedIn, Actor{Name: "Amina"})
	assert.ErrorIs(t, err, ErrBookingExpired)
}

func TestService_CheckIn_Unpaid(t *testing.T) {
	env := newTestEnv(time.Date(2026, 10, 10, 16, 0, 0, 0, time.UTC))
	b := confirmedBooking()
	b.PaymentStatus = domain.PaymentAwaitingVerification
	env.bookings.On("GetByID", mock.Anything, int64(1)).Return(b, nil)

	_, err := env.service.TransitionStatus(context.Background(), 1, domain.BookingCheckedIn, Actor{Name: "Amina"})
	assert.ErrorIs(t, err, ErrPaymentRequired)
}

func TestService_CheckIn_FromPending(t *testing.T) {
	env := newTestEnv(time.Date(2026, 10, 10, 16, 0, 0, 0, time.UTC))
	b := confirmedBooking()
	b.Status = domain.BookingPending
	env.bookings.On("GetByID", mock.Anything, int64(1)).Return(b, nil)

	_, err := env.service.TransitionStatus(context.Background(), 1, domain.BookingCheckedIn, Actor{Name: "Amina"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_Transition_RejectsConfirmTarget(t *testing.T) {
	env := newTestEnv(time.Now().UTC())
	env.bookings.On("GetByID", mock.Anything, int64(1)).Return(confirmedBooking(), nil)

	// Confirmation only happens through payment verification.
	_, err := env.service.TransitionStatus(context.Background(), 1, domain.BookingConfirmed, Actor{Name: "Amina"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_CheckOut_Success(t *testing.T) {
	env := newTestEnv(time.Date(2026, 10, 12, 10, 0, 0, 0, time.UTC))
	b := confirmedBooking()
	b.Status = domain.BookingCheckedIn

	env.bookings.On("GetByID", mock.Anything, int64(1)).Return(b, nil)
	env.bookings.On("Update", mock.Anything, b).Return(nil)
	env.rooms.On("UpdateStatus", mock.Anything, int64(10), domain.RoomCleaning).Return(nil)
	env.rooms.On("GetByID", mock.Anything, int64(10)).Return(testRoom(), nil)
	env.guests.On("GetByID", mock.Anything, "GS-ABC123").Return(testGuest(), nil)
	env.stays.On("Add", mock.Anything, mock.MatchedBy(func(rec *domain.StayRecord) bool {
		return rec.Action == domain.StayCheckOut
	})).Return(nil)
	env.audit.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()
	env.notifs.On("CheckedOut", b, mock.Anything).Return()

	got, err := env.service.TransitionStatus(context.Background(), 1, domain.BookingCheckedOut, Actor{Name: "Amina"})

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCheckedOut, got.Status)
	env.rooms.AssertCalled(t, "UpdateStatus", mock.Anything, int64(10), domain.RoomCleaning)
}

func TestService_CheckOut_WithoutCheckIn(t *testing.T) {
	env := newTestEnv(time.Now().UTC())
	env.bookings.On("GetByID", mock.Anything, int64(1)).Return(confirmedBooking(), nil)

	_, err := env.service.TransitionStatus(context.Background(), 1, domain.BookingCheckedOut, Actor{Name: "Amina"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_Cancel_PendingUnpaid(t *testing.T) {
	env := newTestEnv(time.Now().UTC())
	b := confirmedBooking()
	b.Status = domain.BookingPending
	b.PaymentStatus = domain.PaymentUnpaid

	env.bookings.On("GetByID", mock.Anything, int64(1)).Return(b, nil)
	env.bookings.On("Update", mock.Anything, b).Return(nil)
	env.rooms.On("UpdateStatus", mock.Anything, int64(10), domain.RoomAvailable).Return(nil)
	env.rooms.On("GetByID", mock.Anything, int64(10)).Return(testRoom(), nil)
	env.guests.On("GetByID", mock.Anything, "GS-ABC123").Return(testGuest(), nil)
	env.audit.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()
	env.notifs.On("BookingCancelled", b, mock.Anything, "Standard Room 1", "No longer needed").Return()

	got, err := env.service.Cancel(context.Background(), 1, Actor{ID: 7, Name: "Amina"}, "No longer needed")

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, got.Status)
	assert.Equal(t, domain.PaymentUnpaid, got.PaymentStatus)
	env.notifs.AssertNotCalled(t, "RefundRequired", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Cancel_PaidFlagsRefund(t *testing.T) {
	env := newTestEnv(time.Now().UTC())
	b := confirmedBooking()

	env.bookings.On("GetByID", mock.Anything, int64(1)).Return(b, nil)
	env.bookings.On("Update", mock.Anything, b).Return(nil)
	env.rooms.On("UpdateStatus", mock.Anything, int64(10), domain.RoomAvailable).Return(nil)
	env.rooms.On("GetByID", mock.Anything, int64(10)).Return(testRoom(), nil)
	env.guests.On("GetByID", mock.Anything, "GS-ABC123").Return(testGuest(), nil)
	env.audit.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()
	env.notifs.On("BookingCancelled", b, mock.Anything, mock.Anything, mock.Anything).Return()
	env.notifs.On("RefundRequired", b, mock.Anything, mock.Anything).Return()

	got, err := env.service.Cancel(context.Background(), 1, Actor{Name: "Amina"}, "")

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentRefundPending, got.PaymentStatus)
	last := got.History[len(got.History)-1]
	assert.Equal(t, domain.EventCancelled, last.Event)
	assert.Equal(t, domain.PaymentRefundPending, last.PaymentShift)
	env.notifs.AssertCalled(t, "RefundRequired", b, mock.Anything, mock.Anything)
}

func TestService_Cancel_AlreadyCancelledIsNoop(t *testing.T) {
	env := newTestEnv(time.Now().UTC())
	b := confirmedBooking()
	b.Status = domain.BookingCancelled
	historyLen := len(b.History)

	env.bookings.On("GetByID", mock.Anything, int64(1)).Return(b, nil)

	got, err := env.service.Cancel(context.Background(), 1, Actor{Name: "Amina"}, "")

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, got.Status)
	assert.Len(t, got.History, historyLen)
	env.bookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Cancel_ActiveStayRejected(t *testing.T) {
	env := newTestEnv(time.Now().UTC())
	b := confirmedBooking()
	b.Status = domain.BookingCheckedIn

	env.bookings.On("GetByID", mock.Anything, int64(1)).Return(b, nil)

	_, err := env.service.Cancel(context.Background(), 1, Actor{Name: "Amina"}, "")
	assert.ErrorIs(t, err, ErrStayActive)
}

func TestService_CancelByGuest_WrongEmail(t *testing.T) {
	env := newTestEnv(time.Now().UTC())
	b := confirmedBooking()

	env.bookings.On("GetByCode", mock.Anything, "MHS-DEADBEEF").Return(b, nil)
	env.guests.On("GetByID", mock.Anything, "GS-ABC123").Return(testGuest(), nil)

	// Wrong email must look identical to an unknown code.
	_, err := env.service.CancelByGuest(context.Background(), "mhs-deadbeef", "stranger@example.com", "")
	assert.ErrorIs(t, err, ErrNotFound)
	env.bookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_CancelByGuest_Success(t *testing.T) {
	env := newTestEnv(time.Now().UTC())
	b := confirmedBooking()
	b.Status = domain.BookingPending
	b.PaymentStatus = domain.PaymentUnpaid

	env.bookings.On("GetByCode", mock.Anything, "MHS-DEADBEEF").Return(b, nil)
	env.bookings.On("Update", mock.Anything, b).Return(nil)
	env.rooms.On("UpdateStatus", mock.Anything, int64(10), domain.RoomAvailable).Return(nil)
	env.rooms.On("GetByID", mock.Anything, int64(10)).Return(testRoom(), nil)
	env.guests.On("GetByID", mock.Anything, "GS-ABC123").Return(testGuest(), nil)
	env.audit.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()
	env.notifs.On("BookingCancelled", b, mock.Anything, mock.Anything, "Self-service cancellation").Return()

	got, err := env.service.CancelByGuest(context.Background(), " mhs-deadbeef ", "JOHN@example.com", "")

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, got.Status)
	assert.Equal(t, "Guest", got.History[len(got.History)-1].Actor)
}

func TestService_Lookup_WrongEmail(t *testing.T) {
	env := newTestEnv(time.Now().UTC())
	b := confirmedBooking()

	env.bookings.On("GetByCode", mock.Anything, "MHS-DEADBEEF").Return(b, nil)
	env.guests.On("GetByID", mock.Anything, "GS-ABC123").Return(testGuest(), nil)

	_, err := env.service.GetByCodeAndEmail(context.Background(), "MHS-DEADBEEF", "other@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
