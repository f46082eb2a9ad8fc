package model

const (
	EntityName = "unit"
)

// Photo categories as the backend tags them.
const (
	PhotoCategoryMain     = "principale"
	PhotoCategoryBedroom  = "camera"
	PhotoCategoryBathroom = "bagno"
	PhotoCategoryKitchen  = "cucina"
	PhotoCategoryOutdoor  = "esterno"
	PhotoCategoryOther    = "altro"
)

type Photo struct {
	ID          int
	URL         string
	Description string
	Category    string
	Order       int
}

// Unit is a read-only snapshot of a rentable property. The Remote Booking
// Service owns and mutates it; a snapshot lives for roughly one page view.
type Unit struct {
	ID           int
	Name         string
	Description  string
	Location     string
	NightlyRate  float64
	MaxGuests    int
	Rooms        int
	Bathrooms    int
	Amenities    []string
	Available    bool
	MainImageURL string
	Photos       []Photo
}
