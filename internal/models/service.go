package models

// BusinessService is one offering the business advertises, managed from the
// settings editor
type BusinessService struct {
	ID          string `gorm:"primaryKey;type:varchar(36);column:id" json:"id"`
	Name        string `gorm:"type:varchar(128);not null;column:name" json:"name"`
	Description string `gorm:"type:text;column:description" json:"description"`
	Price       string `gorm:"type:varchar(32);column:price" json:"price"`
	Duration    string `gorm:"type:varchar(32);column:duration" json:"duration"`
}

// TableName specifies the table name for BusinessService
func (BusinessService) TableName() string {
	return "pilot_business_services"
}
