package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nataliejames/wedding-api/internal/models"
)

// In-memory repo fakes. Each records its calls so tests can assert on
// ordering and arguments, not just results.

type fakeGuestRepo struct {
	guests         []*models.Guest
	searchCalls    int
	lastExclude    []uuid.UUID
	emailUpdates   []uuid.UUID
	updateEmailErr error
}

func (f *fakeGuestRepo) SearchGuests(ctx context.Context, query string, exclude []uuid.UUID, limit int) ([]*models.Guest, error) {
	f.searchCalls++
	f.lastExclude = exclude

	excluded := make(map[uuid.UUID]bool, len(exclude))
	for _, id := range exclude {
		excluded[id] = true
	}

	var out []*models.Guest
	for _, g := range f.guests {
		if excluded[g.ID] {
			continue
		}
		out = append(out, g)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeGuestRepo) ListGuests(ctx context.Context) ([]*models.Guest, error) {
	return f.guests, nil
}

func (f *fakeGuestRepo) CreateGuest(ctx context.Context, guest *models.Guest) (*models.Guest, error) {
	f.guests = append(f.guests, guest)
	return guest, nil
}

func (f *fakeGuestRepo) UpdateGuestEmail(ctx context.Context, id uuid.UUID, email string) error {
	if f.updateEmailErr != nil {
		return f.updateEmailErr
	}
	f.emailUpdates = append(f.emailUpdates, id)
	return nil
}

type fakeRSVPRepo struct {
	rows      []*models.RSVP
	insertErr error

	// order records repo-level events across fakes that share it, so a
	// test can assert the insert happened before the email update.
	order *[]string
}

func (f *fakeRSVPRepo) InsertRSVPs(ctx context.Context, rows []*models.RSVP) error {
	if f.order != nil {
		*f.order = append(*f.order, "insert")
	}
	if f.insertErr != nil {
		return f.insertErr
	}
	f.rows = append(f.rows, rows...)
	return nil
}

func (f *fakeRSVPRepo) ListRSVPs(ctx context.Context) ([]*models.RSVP, error) {
	return f.rows, nil
}

func (f *fakeRSVPRepo) RespondedGuestIDs(ctx context.Context, guestIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	byID := make(map[uuid.UUID]bool, len(f.rows))
	for _, r := range f.rows {
		byID[r.GuestID] = true
	}
	out := make(map[uuid.UUID]bool)
	for _, id := range guestIDs {
		if byID[id] {
			out[id] = true
		}
	}
	return out, nil
}

type orderedGuestRepo struct {
	fakeGuestRepo
	order *[]string
}

func (f *orderedGuestRepo) UpdateGuestEmail(ctx context.Context, id uuid.UUID, email string) error {
	if f.order != nil {
		*f.order = append(*f.order, "update_email")
	}
	return f.fakeGuestRepo.UpdateGuestEmail(ctx, id, email)
}

type fakePhotoRepo struct {
	photos    []*models.Photo
	objects   map[string][]byte
	removeErr error
	removed   []string
}

func newFakePhotoRepo() *fakePhotoRepo {
	return &fakePhotoRepo{objects: make(map[string][]byte)}
}

func (f *fakePhotoRepo) InsertPhoto(ctx context.Context, photo *models.Photo) (*models.Photo, error) {
	p := *photo
	p.ID = uuid.New()
	f.photos = append(f.photos, &p)
	return &p, nil
}

func (f *fakePhotoRepo) ListPhotos(ctx context.Context, offset, limit int, newestFirst bool) ([]*models.Photo, int, error) {
	total := len(f.photos)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return f.photos[offset:end], total, nil
}

func (f *fakePhotoRepo) GetPhotoByID(ctx context.Context, id uuid.UUID) (*models.Photo, error) {
	for _, p := range f.photos {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, models.ErrPhotoNotFound
}

func (f *fakePhotoRepo) DeletePhotoRow(ctx context.Context, id uuid.UUID) error {
	for i, p := range f.photos {
		if p.ID == id {
			f.photos = append(f.photos[:i], f.photos[i+1:]...)
			return nil
		}
	}
	return models.ErrPhotoNotFound
}

func (f *fakePhotoRepo) UploadObject(ctx context.Context, path string, data []byte, contentType string) error {
	f.objects[path] = data
	return nil
}

func (f *fakePhotoRepo) RemoveObject(ctx context.Context, path string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removed = append(f.removed, path)
	delete(f.objects, path)
	return nil
}

func (f *fakePhotoRepo) DownloadObject(ctx context.Context, path string) ([]byte, error) {
	data, ok := f.objects[path]
	if !ok {
		return nil, fmt.Errorf("object %s not found", path)
	}
	return data, nil
}

func (f *fakePhotoRepo) PublicURL(path string) string {
	return "https://storage.example.com/photos/" + path
}

type fakeContributionRepo struct {
	contributions []*models.Contribution
}

func (f *fakeContributionRepo) InsertContribution(ctx context.Context, c *models.Contribution) (*models.Contribution, error) {
	saved := *c
	saved.ID = uuid.New()
	f.contributions = append(f.contributions, &saved)
	return &saved, nil
}

func (f *fakeContributionRepo) GetContributionBySessionID(ctx context.Context, sessionID string) (*models.Contribution, error) {
	for _, c := range f.contributions {
		if c.StripeSessionID == sessionID {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeContributionRepo) ListContributions(ctx context.Context) ([]*models.Contribution, error) {
	return f.contributions, nil
}

type fakeShuttleRepo struct {
	bookings []*models.ShuttleBooking
}

func (f *fakeShuttleRepo) InsertShuttleBooking(ctx context.Context, booking *models.ShuttleBooking) (*models.ShuttleBooking, error) {
	saved := *booking
	saved.ID = uuid.New()
	f.bookings = append(f.bookings, &saved)
	return &saved, nil
}

func (f *fakeShuttleRepo) ListShuttleBookings(ctx context.Context) ([]*models.ShuttleBooking, error) {
	return f.bookings, nil
}
