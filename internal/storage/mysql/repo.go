package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"spotstay/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

const dupEntryErrNo = 1062

func isDupEntry(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == dupEntryErrNo
}

func scanSpot(row interface{ Scan(...any) error }) (domain.Spot, error) {
	var s domain.Spot
	var desc sql.NullString
	err := row.Scan(
		&s.ID, &s.OwnerID, &s.Address, &s.City, &s.State, &s.Country,
		&s.Lat, &s.Lng, &s.Name, &desc, &s.Price, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return domain.Spot{}, err
	}
	if desc.Valid {
		d := desc.String
		s.Description = &d
	}
	return s, nil
}

func (r *Repo) ListSpots(ctx context.Context) ([]domain.Spot, error) {
	return r.listSpots(ctx, listSpotsSQL)
}

func (r *Repo) ListSpotsByOwner(ctx context.Context, ownerID int64) ([]domain.Spot, error) {
	return r.listSpots(ctx, listSpotsByOwnerSQL, ownerID)
}

func (r *Repo) listSpots(ctx context.Context, query string, args ...any) ([]domain.Spot, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Spot
	for rows.Next() {
		s, err := scanSpot(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repo) GetSpot(ctx context.Context, id int64) (domain.Spot, error) {
	s, err := scanSpot(r.db.QueryRowContext(ctx, getSpotSQL, id))
	if err == sql.ErrNoRows {
		return domain.Spot{}, &domain.NotFoundError{Resource: "Spot"}
	}
	return s, err
}

func (r *Repo) CreateSpot(ctx context.Context, s domain.Spot) (domain.Spot, error) {
	res, err := r.db.ExecContext(ctx, insertSpotSQL,
		s.OwnerID, s.Address, s.City, s.State, s.Country,
		s.Lat, s.Lng, s.Name, s.Description, s.Price,
	)
	if err != nil {
		return domain.Spot{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Spot{}, err
	}
	return r.GetSpot(ctx, id)
}

func (r *Repo) ListSpotImages(ctx context.Context, spotID int64) ([]domain.SpotImage, error) {
	rows, err := r.db.QueryContext(ctx, listSpotImagesSQL, spotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SpotImage
	for rows.Next() {
		var img domain.SpotImage
		if err := rows.Scan(&img.ID, &img.SpotID, &img.URL, &img.Preview); err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, rows.Err()
}

func (r *Repo) ListReviewStars(ctx context.Context, spotID int64) ([]int, error) {
	rows, err := r.db.QueryContext(ctx, listReviewStarsSQL, spotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []int
	for rows.Next() {
		var s int
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repo) ListSpotReviews(ctx context.Context, spotID int64) ([]domain.SpotReview, error) {
	rows, err := r.db.QueryContext(ctx, listSpotReviewsSQL, spotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SpotReview
	byID := map[int64]int{}
	for rows.Next() {
		var sr domain.SpotReview
		if err := rows.Scan(
			&sr.ID, &sr.SpotID, &sr.UserID, &sr.Review.Review, &sr.Stars,
			&sr.CreatedAt, &sr.UpdatedAt,
			&sr.User.ID, &sr.User.FirstName, &sr.User.LastName,
		); err != nil {
			return nil, err
		}
		byID[sr.ID] = len(out)
		out = append(out, sr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	imgRows, err := r.db.QueryContext(ctx, listSpotReviewImagesSQL, spotID)
	if err != nil {
		return nil, err
	}
	defer imgRows.Close()
	for imgRows.Next() {
		var img domain.ReviewImage
		if err := imgRows.Scan(&img.ID, &img.ReviewID, &img.URL); err != nil {
			return nil, err
		}
		if i, ok := byID[img.ReviewID]; ok {
			out[i].Images = append(out[i].Images, img)
		}
	}
	return out, imgRows.Err()
}

func (r *Repo) CreateReview(ctx context.Context, rv domain.Review) (domain.Review, error) {
	res, err := r.db.ExecContext(ctx, insertReviewSQL, rv.SpotID, rv.UserID, rv.Review, rv.Stars)
	if err != nil {
		return domain.Review{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Review{}, err
	}
	return r.GetReview(ctx, id)
}

func (r *Repo) GetReview(ctx context.Context, id int64) (domain.Review, error) {
	var rv domain.Review
	err := r.db.QueryRowContext(ctx, getReviewSQL, id).Scan(
		&rv.ID, &rv.SpotID, &rv.UserID, &rv.Review, &rv.Stars, &rv.CreatedAt, &rv.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return domain.Review{}, &domain.NotFoundError{Resource: "Review"}
	}
	return rv, err
}

func (r *Repo) GetReviewImage(ctx context.Context, id int64) (domain.ReviewImage, error) {
	var img domain.ReviewImage
	err := r.db.QueryRowContext(ctx, getReviewImageSQL, id).Scan(&img.ID, &img.ReviewID, &img.URL)
	if err == sql.ErrNoRows {
		return domain.ReviewImage{}, &domain.NotFoundError{Resource: "Review Image"}
	}
	return img, err
}

func (r *Repo) DeleteReviewImage(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteReviewImageSQL, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return &domain.NotFoundError{Resource: "Review Image"}
	}
	return nil
}

func (r *Repo) ListSpotBookings(ctx context.Context, spotID int64) ([]domain.SpotBooking, error) {
	rows, err := r.db.QueryContext(ctx, listSpotBookingsSQL, spotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SpotBooking
	for rows.Next() {
		var b domain.SpotBooking
		if err := rows.Scan(
			&b.ID, &b.SpotID, &b.UserID, &b.StartDate, &b.EndDate,
			&b.CreatedAt, &b.UpdatedAt,
			&b.Renter.ID, &b.Renter.FirstName, &b.Renter.LastName,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *Repo) GetUserRef(ctx context.Context, id int64) (domain.UserRef, error) {
	var u domain.UserRef
	err := r.db.QueryRowContext(ctx, getUserRefSQL, id).Scan(&u.ID, &u.FirstName, &u.LastName)
	if err == sql.ErrNoRows {
		return domain.UserRef{}, &domain.NotFoundError{Resource: "User"}
	}
	return u, err
}

func (r *Repo) GetUser(ctx context.Context, id int64) (domain.User, error) {
	return r.getUser(ctx, getUserSQL, id)
}

func (r *Repo) GetUserByCredential(ctx context.Context, credential string) (domain.User, error) {
	return r.getUser(ctx, getUserByCredentialSQL, credential, credential)
}

func (r *Repo) getUser(ctx context.Context, query string, args ...any) (domain.User, error) {
	var u domain.User
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Username, &u.HashedPassword,
	)
	if err == sql.ErrNoRows {
		return domain.User{}, &domain.NotFoundError{Resource: "User"}
	}
	return u, err
}

func (r *Repo) AddSpotImage(ctx context.Context, img domain.SpotImage) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertSpotImageSQL, img.SpotID, img.URL, img.Preview)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *Repo) AddReviewImage(ctx context.Context, img domain.ReviewImage) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertReviewImageSQL, img.ReviewID, img.URL)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *Repo) AddBooking(ctx context.Context, b domain.Booking) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertBookingSQL, b.SpotID, b.UserID, b.StartDate, b.EndDate)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *Repo) CreateUser(ctx context.Context, u domain.User) (domain.User, error) {
	res, err := r.db.ExecContext(ctx, insertUserSQL,
		u.FirstName, u.LastName, u.Email, u.Username, u.HashedPassword,
	)
	if err != nil {
		if isDupEntry(err) {
			return domain.User{}, &domain.ValidationError{Errors: map[string]string{
				"email": "User with that email or username already exists",
			}}
		}
		return domain.User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}
	return r.GetUser(ctx, id)
}
