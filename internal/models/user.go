package models

import (
	"time"

	"gorm.io/datatypes"
)

type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type User struct {
	BaseModel
	FirstName    string                    `gorm:"not null" json:"firstName"`
	LastName     string                    `gorm:"not null" json:"lastName"`
	Email        string                    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string                    `gorm:"column:password;not null" json:"-"`
	Role         UserRole                  `gorm:"type:varchar(20);not null;index" json:"role"`
	Bio          string                    `json:"bio"`
	Location     string                    `json:"location"`
	Links        datatypes.JSONSlice[Link] `json:"links"`

	// Creator
	Platform      string     `json:"platform,omitempty"`
	Handle        string     `json:"handle,omitempty"`
	Followers     int64      `json:"followers,omitempty"`
	DOB           *time.Time `gorm:"column:dob" json:"dob,omitempty"`
	AudienceReach string     `json:"audienceReach,omitempty"`

	// Sponsor
	CompanyName   string `json:"companyName,omitempty"`
	NoOfEmployees string `json:"noOfEmployees,omitempty"`
	Budget        string `json:"budget,omitempty"`
	Requirements  string `json:"requirements,omitempty"`
}

// ProfileUpdate - разобранный и проверенный набор изменений профиля.
// nil означает "не менять".
type ProfileUpdate struct {
	FirstName     *string
	LastName      *string
	Bio           *string
	Location      *string
	Links         *[]Link
	Platform      *string
	Handle        *string
	Followers     *int64
	AudienceReach *string
	DOB           *time.Time
	CompanyName   *string
	NoOfEmployees *string
	Budget        *string
	Requirements  *string
}

// Columns возвращает изменения в виде колонка -> значение
func (u ProfileUpdate) Columns() map[string]any {
	cols := make(map[string]any)
	setStr := func(col string, v *string) {
		if v != nil {
			cols[col] = *v
		}
	}
	setStr("first_name", u.FirstName)
	setStr("last_name", u.LastName)
	setStr("bio", u.Bio)
	setStr("location", u.Location)
	setStr("platform", u.Platform)
	setStr("handle", u.Handle)
	setStr("audience_reach", u.AudienceReach)
	setStr("company_name", u.CompanyName)
	setStr("no_of_employees", u.NoOfEmployees)
	setStr("budget", u.Budget)
	setStr("requirements", u.Requirements)
	if u.Links != nil {
		cols["links"] = datatypes.JSONSlice[Link](*u.Links)
	}
	if u.Followers != nil {
		cols["followers"] = *u.Followers
	}
	if u.DOB != nil {
		cols["dob"] = *u.DOB
	}
	return cols
}

// Apply применяет изменения к пользователю в памяти
func (u ProfileUpdate) Apply(user *User) {
	apply := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	apply(&user.FirstName, u.FirstName)
	apply(&user.LastName, u.LastName)
	apply(&user.Bio, u.Bio)
	apply(&user.Location, u.Location)
	apply(&user.Platform, u.Platform)
	apply(&user.Handle, u.Handle)
	apply(&user.AudienceReach, u.AudienceReach)
	apply(&user.CompanyName, u.CompanyName)
	apply(&user.NoOfEmployees, u.NoOfEmployees)
	apply(&user.Budget, u.Budget)
	apply(&user.Requirements, u.Requirements)
	if u.Links != nil {
		user.Links = append(datatypes.JSONSlice[Link]{}, (*u.Links)...)
	}
	if u.Followers != nil {
		user.Followers = *u.Followers
	}
	if u.DOB != nil {
		dob := *u.DOB
		user.DOB = &dob
	}
}

func (u ProfileUpdate) Empty() bool {
	return len(u.Columns()) == 0
}
