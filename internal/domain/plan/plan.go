package plan

// Plan is an insurance plan ("convênio"). Reference data: this service
// reads plans and resolves patient references, it never writes them.
type Plan struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	Name   string `gorm:"column:name;type:varchar(150);not null"`
	Active bool   `gorm:"column:active;default:true"`
}

func (Plan) TableName() string {
	return "registry.plans"
}
