package model

// IsOwner reports whether userID listed the item.
func IsOwner(userID int64, item Item) bool {
	return item.OwnerID == userID
}

// CanViewBooking reports whether userID is the booker or the owner of the booked item.
func CanViewBooking(userID int64, b Booking) bool {
	return b.Booker.ID == userID || b.Item.OwnerID == userID
}

// CanDecideBooking reports whether userID may approve or reject b.
func CanDecideBooking(userID int64, b Booking) bool {
	return b.Item.OwnerID == userID
}
