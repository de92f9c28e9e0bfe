package model

// AboutUs is a singleton content block
type AboutUs struct {
	BaseModel
	Title       string `gorm:"type:varchar(255)" json:"title"`
	Body        string `gorm:"type:text" json:"body"`
	LinkTitle   string `gorm:"type:varchar(255)" json:"link_title"`
	LinkAddress string `gorm:"type:varchar(255)" json:"link_address"`
}

func (AboutUs) TableName() string {
	return "about_us"
}

// Footer is a singleton content block
type Footer struct {
	BaseModel
	ContactAddress string `gorm:"type:varchar(255)" json:"contact_address"`
	ContactPhone   string `gorm:"type:varchar(20)" json:"contact_phone"`
	ContactEmail   string `gorm:"type:varchar(255)" json:"contact_email"`
	Title          string `gorm:"type:varchar(255)" json:"title"`
	Body           string `gorm:"type:text" json:"body"`
	WorkDays       string `gorm:"type:varchar(255)" json:"work_days"`
	WorkHourFrom   string `gorm:"type:varchar(20)" json:"work_hour_from"`
	WorkHourTo     string `gorm:"type:varchar(20)" json:"work_hour_to"`
	TelegramLink   string `gorm:"type:varchar(255)" json:"telegram_link"`
	WhatsappLink   string `gorm:"type:varchar(255)" json:"whatsapp_link"`
	InstagramLink  string `gorm:"type:varchar(255)" json:"instagram_link"`
	YoutubeLink    string `gorm:"type:varchar(255)" json:"youtube_link"`
	Copyright      string `gorm:"type:varchar(255)" json:"copyright"`
}

// ContactUs is a message left by a customer on the storefront
type ContactUs struct {
	BaseModel
	Name    string `gorm:"type:varchar(255)" json:"name"`
	Email   string `gorm:"type:varchar(255)" json:"email"`
	Subject string `gorm:"type:varchar(255)" json:"subject"`
	Text    string `gorm:"type:text" json:"text"`
}

func (ContactUs) TableName() string {
	return "contact_us"
}
