package types

// TagSeed 标签导入数据
type TagSeed struct {
	Name  string `json:"name" validate:"required,max=200"`
	Color string `json:"color" validate:"omitempty,hexcolor7"`
	Slug  string `json:"slug" validate:"required,max=200"`
}

// IngredientSeed 食材导入数据
type IngredientSeed struct {
	Name            string `json:"name" validate:"required,max=200"`
	MeasurementUnit string `json:"measurement_unit" validate:"required,max=200"`
}
