package model

// Profile is keyed by email like User but lives in its own collection.
type Profile struct {
	Email     string `bson:"email" json:"email"`
	Education string `bson:"education" json:"education"`
	Location  string `bson:"location" json:"location"`
	Phone     string `bson:"phone" json:"phone"`
	LinkedIn  string `bson:"linkedIn" json:"linkedIn"`
}

// Complete reports whether every updatable field is present.
func (p Profile) Complete() bool {
	return p.Education != "" && p.Location != "" && p.Phone != "" && p.LinkedIn != ""
}
