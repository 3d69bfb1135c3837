// Package models defines the report archive schema.
package models

import "time"

// ReportRun is one archived inspection run. The service records a row
// per inspected bundle so operators can track bundle health over time
// without re-running reports.
type ReportRun struct {
	ID        uint      `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	ObjectKey string    `gorm:"column:object_key;type:varchar(512);index" json:"object_key"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Scenes     int `gorm:"column:scenes;default:0" json:"scenes"`
	Objects    int `gorm:"column:objects;default:0" json:"objects"`
	Animations int `gorm:"column:animations;default:0" json:"animations"`
	Skins      int `gorm:"column:skins;default:0" json:"skins"`
	Lights     int `gorm:"column:lights;default:0" json:"lights"`
	Materials  int `gorm:"column:materials;default:0" json:"materials"`
	Meshes     int `gorm:"column:meshes;default:0" json:"meshes"`
	Textures   int `gorm:"column:textures;default:0" json:"textures"`
	Images     int `gorm:"column:images;default:0" json:"images"`

	// Failures counts entities the importer could not produce.
	Failures int `gorm:"column:failures;default:0" json:"failures"`
	// OutOfRange counts census findings.
	OutOfRange int `gorm:"column:out_of_range;default:0" json:"out_of_range"`
}

func (ReportRun) TableName() string {
	return "report_runs"
}
