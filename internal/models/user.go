package models

// Account is either a *User or a *Provider. The two kinds live in separate
// tables and their ids overlap, so an account is identified by (Kind, ID).
type Account interface {
	Kind() AccountKind
	AccountID() uint
	DisplayName() string
	ContactEmail() string
	PasswordDigest() string

	isAccount()
}

type User struct {
	BaseModel
	FullName     string `gorm:"size:100;not null"`
	Email        string `gorm:"size:100;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:255;not null"`
	Phone        string `gorm:"size:20;not null"`
	Address      string `gorm:"type:text"`
}

type Provider struct {
	BaseModel
	FullName          string  `gorm:"size:100;not null"`
	Email             string  `gorm:"size:100;not null;uniqueIndex"`
	PasswordHash      string  `gorm:"size:255;not null"`
	Phone             string  `gorm:"size:20;not null"`
	ServiceCategoryID uint    `gorm:"not null;index"`
	ExperienceYears   int     `gorm:"not null;default:0"`
	HourlyRate        float64 `gorm:"not null"`
	Bio               string  `gorm:"type:text"`
	Rating            float64 `gorm:"not null;default:0"`
	TotalJobs         int     `gorm:"not null;default:0"`
	IsVerified        bool    `gorm:"not null;default:false"`
}

func (u *User) Kind() AccountKind      { return AccountKindUser }
func (u *User) AccountID() uint        { return u.ID }
func (u *User) DisplayName() string    { return u.FullName }
func (u *User) ContactEmail() string   { return u.Email }
func (u *User) PasswordDigest() string { return u.PasswordHash }
func (u *User) isAccount()             {}

func (p *Provider) Kind() AccountKind      { return AccountKindProvider }
func (p *Provider) AccountID() uint        { return p.ID }
func (p *Provider) DisplayName() string    { return p.FullName }
func (p *Provider) ContactEmail() string   { return p.Email }
func (p *Provider) PasswordDigest() string { return p.PasswordHash }
func (p *Provider) isAccount()             {}
