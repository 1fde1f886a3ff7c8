package mysql

const spotColumns = `
  s.id, s.owner_id, s.address, s.city, s.state, s.country,
  s.lat, s.lng, s.name, s.description, s.price, s.created_at, s.updated_at`

const listSpotsSQL = `
SELECT` + spotColumns + `
FROM spots s
ORDER BY s.id`

const listSpotsByOwnerSQL = `
SELECT` + spotColumns + `
FROM spots s
WHERE s.owner_id = ?
ORDER BY s.id`

const getSpotSQL = `
SELECT` + spotColumns + `
FROM spots s
WHERE s.id = ?`

const insertSpotSQL = `
INSERT INTO spots
  (owner_id, address, city, state, country, lat, lng, name, description, price)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const listSpotImagesSQL = `
SELECT id, spot_id, url, preview
FROM spot_images
WHERE spot_id = ?
ORDER BY id`

const listReviewStarsSQL = `
SELECT stars
FROM reviews
WHERE spot_id = ?`

const listSpotReviewsSQL = `
SELECT
  r.id, r.spot_id, r.user_id, r.review, r.stars, r.created_at, r.updated_at,
  u.id, u.first_name, u.last_name
FROM reviews r
JOIN users u ON u.id = r.user_id
WHERE r.spot_id = ?
ORDER BY r.id`

// Review images of every review on a spot, joined through reviews so a
// single round trip covers the whole projection.
const listSpotReviewImagesSQL = `
SELECT ri.id, ri.review_id, ri.url
FROM review_images ri
JOIN reviews r ON r.id = ri.review_id
WHERE r.spot_id = ?
ORDER BY ri.id`

const insertReviewSQL = `
INSERT INTO reviews (spot_id, user_id, review, stars)
VALUES (?, ?, ?, ?)`

const getReviewSQL = `
SELECT id, spot_id, user_id, review, stars, created_at, updated_at
FROM reviews
WHERE id = ?`

const getReviewImageSQL = `
SELECT id, review_id, url
FROM review_images
WHERE id = ?`

const deleteReviewImageSQL = `
DELETE FROM review_images
WHERE id = ?`

const listSpotBookingsSQL = `
SELECT
  b.id, b.spot_id, b.user_id, b.start_date, b.end_date, b.created_at, b.updated_at,
  u.id, u.first_name, u.last_name
FROM bookings b
JOIN users u ON u.id = b.user_id
WHERE b.spot_id = ?
ORDER BY b.start_date, b.id`

const getUserRefSQL = `
SELECT id, first_name, last_name
FROM users
WHERE id = ?`

const getUserSQL = `
SELECT id, first_name, last_name, email, username, hashed_password
FROM users
WHERE id = ?`

const getUserByCredentialSQL = `
SELECT id, first_name, last_name, email, username, hashed_password
FROM users
WHERE email = ? OR username = ?`

const insertUserSQL = `
INSERT INTO users (first_name, last_name, email, username, hashed_password)
VALUES (?, ?, ?, ?, ?)`

// Seeding writes, used by cmd/seed and the integration tests. The API
// core never inserts these rows itself.

const insertSpotImageSQL = `
INSERT INTO spot_images (spot_id, url, preview)
VALUES (?, ?, ?)`

const insertReviewImageSQL = `
INSERT INTO review_images (review_id, url)
VALUES (?, ?)`

const insertBookingSQL = `
INSERT INTO bookings (spot_id, user_id, start_date, end_date)
VALUES (?, ?, ?, ?)`
