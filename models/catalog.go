package models

type Tag struct {
	ID    int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"column:name;type:varchar(200);not null" json:"name"`
	Slug  string `gorm:"column:slug;type:varchar(200);not null;uniqueIndex:uk_slug" json:"slug"`
	Color string `gorm:"column:color;type:varchar(7);not null;default:'#ffffff'" json:"color"`
}

func (Tag) TableName() string {
	return "tags"
}

// Ingredient 食材字典，只读
type Ingredient struct {
	ID              int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name            string `gorm:"column:name;type:varchar(200);not null;index:idx_name" json:"name"`
	MeasurementUnit string `gorm:"column:measurement_unit;type:varchar(200);not null" json:"measurement_unit"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}
