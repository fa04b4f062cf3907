package models

// Studio is the top-level owner of every other record
type Studio struct {
	BaseModel
	Name        string `json:"name" gorm:"size:200;not null" validate:"required,max=200"`
	Email       string `json:"email" gorm:"size:255;not null" validate:"required,email,max=255"`
	Phone       string `json:"phone,omitempty" gorm:"size:30"`
	Address     string `json:"address,omitempty" gorm:"size:300"`
	Description string `json:"description,omitempty" gorm:"type:text"`
	LogoURL     string `json:"logo_url,omitempty" gorm:"size:500"`
}

// TableName returns the table name for Studio
func (Studio) TableName() string {
	return "studios"
}

// EntityName returns the human readable kind name
func (Studio) EntityName() string {
	return "studio"
}
