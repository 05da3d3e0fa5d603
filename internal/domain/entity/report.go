package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ReportRange is the comparison period selected on the reports page
type ReportRange string

const (
	ReportRangeWeek    ReportRange = "week"
	ReportRangeMonth   ReportRange = "month"
	ReportRangeQuarter ReportRange = "quarter"
	ReportRangeYear    ReportRange = "year"
)

// ComparisonLabel returns the text shown next to a change, e.g. "vs. last month"
func (r ReportRange) ComparisonLabel() string {
	switch r {
	case ReportRangeWeek, ReportRangeMonth, ReportRangeQuarter, ReportRangeYear:
		return fmt.Sprintf("vs. last %s", r)
	}
	return ""
}

// Trend is the direction of a reported change
type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

// TrendOf derives the trend from the sign of a change
func TrendOf(change decimal.Decimal) Trend {
	switch change.Sign() {
	case 1:
		return TrendUp
	case -1:
		return TrendDown
	}
	return TrendNeutral
}

// ReportMetric is a headline number with its change against the previous period
type ReportMetric struct {
	Key      string          `gorm:"type:varchar(64);primaryKey" json:"key"`
	Title    string          `gorm:"type:varchar(255);not null" json:"title"`
	Value    string          `gorm:"type:varchar(32);not null" json:"value"`
	Change   decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"change"`
	Position int             `gorm:"not null" json:"-"`
}

func (ReportMetric) TableName() string {
	return "report_metrics"
}

// DepartmentAdmissions counts admitted and discharged patients per department
type DepartmentAdmissions struct {
	Department string `gorm:"type:varchar(100);primaryKey" json:"department"`
	Admitted   int    `gorm:"not null" json:"admitted"`
	Discharged int    `gorm:"not null" json:"discharged"`
	Position   int    `gorm:"not null" json:"-"`
}

func (DepartmentAdmissions) TableName() string {
	return "department_admissions"
}

// DemographicBucket counts patients in an age band
type DemographicBucket struct {
	Name     string `gorm:"type:varchar(16);primaryKey" json:"name"`
	Value    int    `gorm:"not null" json:"value"`
	Position int    `gorm:"not null" json:"-"`
}

func (DemographicBucket) TableName() string {
	return "demographic_buckets"
}

// Census is a snapshot of bed usage
type Census struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	TotalBeds    int       `gorm:"not null" json:"total_beds"`
	OccupiedBeds int       `gorm:"not null" json:"occupied_beds"`
	RecordedAt   time.Time `gorm:"not null;index" json:"recorded_at"`
}

func (Census) TableName() string {
	return "census_snapshots"
}

// OccupancyRate returns occupied beds as a whole-number percentage
func (c Census) OccupancyRate() decimal.Decimal {
	if c.TotalBeds <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(c.OccupiedBeds)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(c.TotalBeds))).
		Round(0)
}
