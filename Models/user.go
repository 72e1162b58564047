package Models

type User struct {
	Id         uint   `json:"id" gorm:"primaryKey"`
	Name       string `json:"name"`
	Email      string `json:"email" gorm:"unique"`
	Password   []byte `json:"-"`
	Permission int    `json:"permission"`
	IsApproved int    `json:"is_approved"`
}
