package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/data/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

// In-memory fakes backing the service tests. They mirror the behavior of the
// Postgres repositories, including nil-on-missing lookups and unique
// violations where the schema declares them.

type fakeTxRunner struct{}

func (fakeTxRunner) WithTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func uniqueViolation(constraint string) error {
	return fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: constraint})
}

// ---------- screenings ----------

type fakeScreeningRepo struct {
	screenings map[int64]*entity.Screening
	nextID     int64
	rooms      *fakeRoomRepo
	films      *fakeFilmRepo
	tariffs    *fakeTariffRepo
	tickets    *fakeTicketRepo
}

func newFakeScreeningRepo(rooms *fakeRoomRepo, films *fakeFilmRepo, tariffs *fakeTariffRepo, tickets *fakeTicketRepo) *fakeScreeningRepo {
	return &fakeScreeningRepo{
		screenings: make(map[int64]*entity.Screening),
		rooms:      rooms,
		films:      films,
		tariffs:    tariffs,
		tickets:    tickets,
	}
}

func (f *fakeScreeningRepo) Create(_ context.Context, screening *entity.Screening) error {
	for _, s := range f.screenings {
		if s.RoomID == screening.RoomID && s.Date.Equal(screening.Date) && s.StartsAt.Equal(screening.StartsAt) {
			return uniqueViolation("screenings_room_date_start_key")
		}
	}
	f.nextID++
	screening.ID = f.nextID
	copied := *screening
	f.screenings[screening.ID] = &copied
	return nil
}

func (f *fakeScreeningRepo) FindByID(_ context.Context, id int64) (*entity.Screening, error) {
	s, ok := f.screenings[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (f *fakeScreeningRepo) FindByRoomAndDate(_ context.Context, roomID int64, date time.Time) ([]*entity.Screening, error) {
	var out []*entity.Screening
	for _, s := range f.screenings {
		if s.RoomID == roomID && s.Date.Equal(date) {
			copied := *s
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartsAt.Before(out[j].StartsAt) })
	return out, nil
}

func (f *fakeScreeningRepo) Delete(_ context.Context, id int64) error {
	delete(f.screenings, id)
	return nil
}

func (f *fakeScreeningRepo) ExistsOverlap(_ context.Context, roomID int64, date time.Time, startsAt, endsAt time.Time, excludeID *int64) (bool, error) {
	for _, s := range f.screenings {
		if excludeID != nil && s.ID == *excludeID {
			continue
		}
		if s.RoomID == roomID && s.Date.Equal(date) && s.StartsAt.Before(endsAt) && s.EndsAt.After(startsAt) {
			return true, nil
		}
	}
	return false, nil
}

// ListOnDate mirrors the board query: one row per screening on the date
// with seats still available, ordered by start time.
func (f *fakeScreeningRepo) ListOnDate(ctx context.Context, date time.Time) ([]*repository.ScreeningSummary, error) {
	var out []*repository.ScreeningSummary
	for _, s := range f.screenings {
		if !s.Date.Equal(date) {
			continue
		}
		room, err := f.rooms.FindByID(ctx, s.RoomID)
		if err != nil {
			return nil, err
		}
		film, err := f.films.FindByID(ctx, s.FilmID)
		if err != nil {
			return nil, err
		}
		tariff, err := f.tariffs.FindByID(ctx, s.TariffID)
		if err != nil {
			return nil, err
		}
		if room == nil || film == nil || tariff == nil {
			continue
		}
		sold, err := f.tickets.CountValidByScreening(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		remaining := room.Capacity - int(sold)
		if remaining <= 0 {
			continue
		}
		out = append(out, &repository.ScreeningSummary{
			ScreeningID:    s.ID,
			FilmTitle:      film.Title,
			RoomNumber:     room.Number,
			StartsAt:       s.StartsAt,
			EndsAt:         s.EndsAt,
			BasePrice:      tariff.BasePrice,
			SeatsRemaining: remaining,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartsAt.Before(out[j].StartsAt) })
	return out, nil
}

// ---------- tickets ----------

type fakeTicketRepo struct {
	tickets map[int64]*entity.Ticket
	nextID  int64
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: make(map[int64]*entity.Ticket)}
}

func (f *fakeTicketRepo) Create(_ context.Context, ticket *entity.Ticket) error {
	for _, t := range f.tickets {
		if t.SeatID == ticket.SeatID && t.ScreeningID == ticket.ScreeningID && t.Status == entity.TicketStatusValid {
			return uniqueViolation("tickets_seat_screening_valid_key")
		}
	}
	f.nextID++
	ticket.ID = f.nextID
	copied := *ticket
	f.tickets[ticket.ID] = &copied
	return nil
}

func (f *fakeTicketRepo) FindByID(_ context.Context, id int64) (*entity.Ticket, error) {
	t, ok := f.tickets[id]
	if !ok {
		return nil, nil
	}
	copied := *t
	return &copied, nil
}

func (f *fakeTicketRepo) UpdateStatus(_ context.Context, ticketID int64, status entity.TicketStatus) (bool, error) {
	t, ok := f.tickets[ticketID]
	if !ok {
		return false, nil
	}
	if status == entity.TicketStatusValid && t.Status != entity.TicketStatusValid {
		for _, other := range f.tickets {
			if other.ID != t.ID && other.SeatID == t.SeatID && other.ScreeningID == t.ScreeningID && other.Status == entity.TicketStatusValid {
				return false, uniqueViolation("tickets_seat_screening_valid_key")
			}
		}
	}
	t.Status = status
	return true, nil
}

func (f *fakeTicketRepo) SeatTaken(_ context.Context, screeningID, seatID int64) (bool, error) {
	for _, t := range f.tickets {
		if t.ScreeningID == screeningID && t.SeatID == seatID && t.Status == entity.TicketStatusValid {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTicketRepo) CountValidByScreening(_ context.Context, screeningID int64) (int64, error) {
	var n int64
	for _, t := range f.tickets {
		if t.ScreeningID == screeningID && t.Status == entity.TicketStatusValid {
			n++
		}
	}
	return n, nil
}

func (f *fakeTicketRepo) FindHistoryByCustomer(_ context.Context, customerID int64) ([]*repository.TicketHistory, error) {
	return nil, nil
}

// ---------- seats ----------

type fakeSeatRepo struct {
	seats      map[int64]*entity.Seat
	screenings *fakeScreeningRepo
	tickets    *fakeTicketRepo
	nextID     int64
}

func newFakeSeatRepo(screenings *fakeScreeningRepo, tickets *fakeTicketRepo) *fakeSeatRepo {
	return &fakeSeatRepo{
		seats:      make(map[int64]*entity.Seat),
		screenings: screenings,
		tickets:    tickets,
	}
}

func (f *fakeSeatRepo) Create(_ context.Context, seat *entity.Seat) error {
	f.nextID++
	seat.ID = f.nextID
	copied := *seat
	f.seats[seat.ID] = &copied
	return nil
}

func (f *fakeSeatRepo) FindByID(_ context.Context, id int64) (*entity.Seat, error) {
	s, ok := f.seats[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSeatRepo) FindByRoomID(_ context.Context, roomID int64) ([]*entity.Seat, error) {
	var out []*entity.Seat
	for _, s := range f.seats {
		if s.RoomID == roomID {
			copied := *s
			out = append(out, &copied)
		}
	}
	sortSeats(out)
	return out, nil
}

func (f *fakeSeatRepo) UpdateStatus(_ context.Context, seatID int64, status entity.SeatStatus) error {
	if s, ok := f.seats[seatID]; ok {
		s.Status = status
	}
	return nil
}

func (f *fakeSeatRepo) FindAvailableForScreening(ctx context.Context, screeningID int64) ([]*entity.Seat, error) {
	screening, ok := f.screenings.screenings[screeningID]
	if !ok {
		return nil, nil
	}

	var out []*entity.Seat
	for _, s := range f.seats {
		if s.RoomID != screening.RoomID || s.Status != entity.SeatStatusAvailable {
			continue
		}
		taken, _ := f.tickets.SeatTaken(ctx, screeningID, s.ID)
		if taken {
			continue
		}
		copied := *s
		out = append(out, &copied)
	}
	sortSeats(out)
	return out, nil
}

func sortSeats(seats []*entity.Seat) {
	sort.Slice(seats, func(i, j int) bool {
		if seats[i].RowLabel != seats[j].RowLabel {
			return seats[i].RowLabel < seats[j].RowLabel
		}
		return seats[i].Number < seats[j].Number
	})
}

// ---------- rooms ----------

type fakeRoomRepo struct {
	rooms  map[int64]*entity.Room
	nextID int64
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: make(map[int64]*entity.Room)}
}

func (f *fakeRoomRepo) Create(_ context.Context, room *entity.Room) error {
	f.nextID++
	room.ID = f.nextID
	copied := *room
	f.rooms[room.ID] = &copied
	return nil
}

func (f *fakeRoomRepo) FindByID(_ context.Context, id int64) (*entity.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, nil
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRoomRepo) FindAll(_ context.Context) ([]*entity.Room, error) {
	var out []*entity.Room
	for _, r := range f.rooms {
		copied := *r
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeRoomRepo) UpdateStatus(_ context.Context, roomID int64, status entity.RoomStatus) error {
	if r, ok := f.rooms[roomID]; ok {
		r.Status = status
	}
	return nil
}

func (f *fakeRoomRepo) Delete(_ context.Context, id int64) error {
	delete(f.rooms, id)
	return nil
}

// ---------- films ----------

type fakeFilmRepo struct {
	films  map[int64]*entity.Film
	nextID int64
}

func newFakeFilmRepo() *fakeFilmRepo {
	return &fakeFilmRepo{films: make(map[int64]*entity.Film)}
}

func (f *fakeFilmRepo) Create(_ context.Context, film *entity.Film) error {
	f.nextID++
	film.ID = f.nextID
	copied := *film
	f.films[film.ID] = &copied
	return nil
}

func (f *fakeFilmRepo) FindByID(_ context.Context, id int64) (*entity.Film, error) {
	fl, ok := f.films[id]
	if !ok {
		return nil, nil
	}
	copied := *fl
	return &copied, nil
}

func (f *fakeFilmRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Film, error) {
	return nil, nil
}

func (f *fakeFilmRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.films)), nil
}

func (f *fakeFilmRepo) Delete(_ context.Context, id int64) error {
	delete(f.films, id)
	return nil
}

func (f *fakeFilmRepo) SearchByTitle(_ context.Context, term string) ([]*entity.Film, error) {
	return nil, nil
}

func (f *fakeFilmRepo) FindByGenre(_ context.Context, genre string) ([]*entity.Film, error) {
	return nil, nil
}

// ---------- tariffs ----------

type fakeTariffRepo struct {
	tariffs map[int64]*entity.Tariff
	nextID  int64
}

func newFakeTariffRepo() *fakeTariffRepo {
	return &fakeTariffRepo{tariffs: make(map[int64]*entity.Tariff)}
}

func (f *fakeTariffRepo) Create(_ context.Context, tariff *entity.Tariff) error {
	f.nextID++
	tariff.ID = f.nextID
	copied := *tariff
	f.tariffs[tariff.ID] = &copied
	return nil
}

func (f *fakeTariffRepo) FindByID(_ context.Context, id int64) (*entity.Tariff, error) {
	t, ok := f.tariffs[id]
	if !ok {
		return nil, nil
	}
	copied := *t
	return &copied, nil
}

func (f *fakeTariffRepo) FindAll(_ context.Context) ([]*entity.Tariff, error) {
	return nil, nil
}

func (f *fakeTariffRepo) Delete(_ context.Context, id int64) error {
	delete(f.tariffs, id)
	return nil
}

// ---------- promotions ----------

type fakePromotionRepo struct {
	promotions map[int64]*entity.Promotion
	nextID     int64
}

func newFakePromotionRepo() *fakePromotionRepo {
	return &fakePromotionRepo{promotions: make(map[int64]*entity.Promotion)}
}

func (f *fakePromotionRepo) Create(_ context.Context, promotion *entity.Promotion) error {
	f.nextID++
	promotion.ID = f.nextID
	copied := *promotion
	f.promotions[promotion.ID] = &copied
	return nil
}

func (f *fakePromotionRepo) FindByID(_ context.Context, id int64) (*entity.Promotion, error) {
	p, ok := f.promotions[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (f *fakePromotionRepo) FindAll(_ context.Context) ([]*entity.Promotion, error) {
	return nil, nil
}

func (f *fakePromotionRepo) Delete(_ context.Context, id int64) error {
	delete(f.promotions, id)
	return nil
}

// ---------- customers ----------

type fakeCustomerRepo struct {
	customers map[int64]*entity.Customer
	nextID    int64
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[int64]*entity.Customer)}
}

func (f *fakeCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	for _, c := range f.customers {
		if c.Email == customer.Email {
			return uniqueViolation("customers_email_key")
		}
	}
	f.nextID++
	customer.ID = f.nextID
	copied := *customer
	f.customers[customer.ID] = &copied
	return nil
}

func (f *fakeCustomerRepo) FindByID(_ context.Context, id int64) (*entity.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCustomerRepo) FindByEmail(_ context.Context, email string) (*entity.Customer, error) {
	for _, c := range f.customers {
		if c.Email == email {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Customer, error) {
	return nil, nil
}

func (f *fakeCustomerRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.customers)), nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	copied := *customer
	f.customers[customer.ID] = &copied
	return nil
}

func (f *fakeCustomerRepo) Delete(_ context.Context, id int64) error {
	delete(f.customers, id)
	return nil
}

func (f *fakeCustomerRepo) Search(_ context.Context, term string) ([]*entity.Customer, error) {
	return nil, nil
}

// ---------- reviews ----------

type fakeReviewRepo struct {
	reviews map[int64]*entity.Review
	nextID  int64
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[int64]*entity.Review)}
}

func (f *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	for _, r := range f.reviews {
		if r.CustomerID == review.CustomerID && r.FilmID == review.FilmID {
			return uniqueViolation("reviews_customer_film_key")
		}
	}
	f.nextID++
	review.ID = f.nextID
	copied := *review
	f.reviews[review.ID] = &copied
	return nil
}

func (f *fakeReviewRepo) ExistsByCustomerAndFilm(_ context.Context, customerID, filmID int64) (bool, error) {
	for _, r := range f.reviews {
		if r.CustomerID == customerID && r.FilmID == filmID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReviewRepo) FindByFilmID(_ context.Context, filmID int64) ([]*entity.Review, error) {
	var out []*entity.Review
	for _, r := range f.reviews {
		if r.FilmID == filmID {
			copied := *r
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) FilmSummary(_ context.Context, filmID int64) (*repository.ReviewSummary, error) {
	return nil, nil
}

// ---------- fixture ----------

type testEnv struct {
	repo       *repository.Repository
	screenings *fakeScreeningRepo
	tickets    *fakeTicketRepo
	seats      *fakeSeatRepo
	rooms      *fakeRoomRepo
	films      *fakeFilmRepo
	tariffs    *fakeTariffRepo
	promotions *fakePromotionRepo
	customers  *fakeCustomerRepo
	reviews    *fakeReviewRepo
}

func newTestEnv() *testEnv {
	rooms := newFakeRoomRepo()
	films := newFakeFilmRepo()
	tariffs := newFakeTariffRepo()
	tickets := newFakeTicketRepo()
	screenings := newFakeScreeningRepo(rooms, films, tariffs, tickets)

	env := &testEnv{
		screenings: screenings,
		tickets:    tickets,
		seats:      newFakeSeatRepo(screenings, tickets),
		rooms:      rooms,
		films:      films,
		tariffs:    tariffs,
		promotions: newFakePromotionRepo(),
		customers:  newFakeCustomerRepo(),
		reviews:    newFakeReviewRepo(),
	}

	env.repo = &repository.Repository{
		Tx:        fakeTxRunner{},
		Screening: env.screenings,
		Ticket:    env.tickets,
		Seat:      env.seats,
		Room:      env.rooms,
		Film:      env.films,
		Tariff:    env.tariffs,
		Promotion: env.promotions,
		Customer:  env.customers,
		Review:    env.reviews,
	}
	return env
}
