package models

import "time"

// DiseaseDetection records one crop scan and the result returned to the
// user. Detection is currently a mock picked from a fixed result set.
type DiseaseDetection struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	UserID             uint      `gorm:"not null;index" json:"user_id"`
	CropName           string    `json:"crop_name"`
	DiseaseName        string    `json:"disease_name"`
	Confidence         float64   `json:"confidence"`
	Image              string    `json:"image"`
	Treatment          string    `gorm:"type:text" json:"treatment"`
	PreventiveMeasures string    `gorm:"type:text" json:"preventive_measures"`
	CreatedAt          time.Time `json:"created_at"`
}

// IrrigationPlan is a saved watering schedule; only counted on the
// dashboard for now, the planner UI computes plans client-side.
type IrrigationPlan struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"not null;index" json:"user_id"`
	CropName         string    `gorm:"not null" json:"crop_name"`
	Area             float64   `json:"area"`
	SoilType         string    `json:"soil_type"`
	WaterRequirement float64   `json:"water_requirement"`
	IrrigationMethod string    `json:"irrigation_method"`
	Schedule         string    `gorm:"type:text" json:"schedule"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	CreatedAt        time.Time `json:"created_at"`
}
