package app

// Pure validators. Each walks every field of the candidate input and
// collects violations into a field->message map; callers fail with the
// whole map at once instead of stopping at the first offender. Nothing
// here touches the store or the transport.

type NewSpotInput struct {
	Address     string   `json:"address"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	Country     string   `json:"country"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
}

func ValidateNewSpot(in NewSpotInput) map[string]string {
	errs := map[string]string{}
	if in.Address == "" {
		errs["address"] = "Street address is required"
	}
	if in.City == "" {
		errs["city"] = "City is required"
	}
	if in.State == "" {
		errs["state"] = "State is required"
	}
	if in.Country == "" {
		errs["country"] = "Country is required"
	}
	if in.Lat == nil || *in.Lat < -90 || *in.Lat > 90 {
		errs["lat"] = "Latitude is not valid"
	}
	if in.Lng == nil || *in.Lng < -180 || *in.Lng > 180 {
		errs["lng"] = "Longitude is not valid"
	}
	if in.Name == "" || len(in.Name) > 50 {
		errs["name"] = "Name must be less than 50 characters"
	}
	if in.Description == "" {
		errs["description"] = "Description is required"
	}
	if in.Price == nil || *in.Price <= 0 {
		errs["price"] = "Price per day is required"
	}
	return errs
}

type NewReviewInput struct {
	Review string `json:"review"`
	Stars  *int   `json:"stars"`
}

func ValidateNewReview(in NewReviewInput) map[string]string {
	errs := map[string]string{}
	if in.Review == "" {
		errs["review"] = "Review text is required"
	}
	if in.Stars == nil || *in.Stars < 1 || *in.Stars > 5 {
		errs["stars"] = "Stars must be an integer from 1 to 5"
	}
	return errs
}

type SignupInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

func ValidateSignup(in SignupInput) map[string]string {
	errs := map[string]string{}
	if in.FirstName == "" {
		errs["firstName"] = "First name is required"
	}
	if in.LastName == "" {
		errs["lastName"] = "Last name is required"
	}
	if in.Email == "" {
		errs["email"] = "Email is required"
	}
	if in.Username == "" {
		errs["username"] = "Username is required"
	}
	if len(in.Password) < 6 {
		errs["password"] = "Password must be 6 characters or more"
	}
	return errs
}
