package database

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Store implements the Database interface on top of gorm. The same
// implementation serves every supported driver; dialect selection happens
// in the factory.
type Store struct {
	db *gorm.DB
}

func newStore(gormDB *gorm.DB) (*Store, error) {
	if err := gormDB.AutoMigrate(
		&User{},
		&Material{},
		&ProductionSchedule{},
		&Assembly{},
		&Inspection{},
		&ProductionCost{},
		&PerformanceMetric{},
		&Activity{},
	); err != nil {
		return nil, err
	}
	return &Store{db: gormDB}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) ListUsers(ctx context.Context) ([]*User, error) {
	var users []*User
	err := s.db.WithContext(ctx).
		Order("created_at desc").
		Find(&users).Error
	return users, err
}

func (s *Store) GetUserByID(ctx context.Context, id string) (*User, error) {
	var user User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := s.db.WithContext(ctx).
		First(&user, "email = ?", strings.ToLower(email)).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) CreateUser(ctx context.Context, user *User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *Store) UpdateUser(ctx context.Context, user *User) error {
	return s.db.WithContext(ctx).Save(user).Error
}

func (s *Store) DeleteUser(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&User{}, "id = ?", id).Error
}

func (s *Store) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&User{}).Count(&count).Error
	return count, err
}

func (s *Store) ListMaterials(ctx context.Context, category, search string) ([]*Material, error) {
	q := s.db.WithContext(ctx).Model(&Material{})
	if category != "" && category != "all" {
		q = q.Where("category = ?", category)
	}
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(sku) LIKE ? OR LOWER(supplier) LIKE ?",
			pattern, pattern, pattern)
	}
	var materials []*Material
	err := q.Order("last_updated desc").Find(&materials).Error
	return materials, err
}

func (s *Store) GetMaterialByID(ctx context.Context, id string) (*Material, error) {
	var material Material
	if err := s.db.WithContext(ctx).First(&material, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &material, nil
}

func (s *Store) GetMaterialBySKU(ctx context.Context, sku string) (*Material, error) {
	var material Material
	if err := s.db.WithContext(ctx).First(&material, "sku = ?", sku).Error; err != nil {
		return nil, err
	}
	return &material, nil
}

func (s *Store) CreateMaterial(ctx context.Context, material *Material) error {
	return s.db.WithContext(ctx).Create(material).Error
}

func (s *Store) UpdateMaterial(ctx context.Context, material *Material) error {
	material.LastUpdated = time.Now()
	return s.db.WithContext(ctx).Save(material).Error
}

func (s *Store) DeleteMaterial(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&Material{}, "id = ?", id).Error
}

func (s *Store) ListSchedules(ctx context.Context, status string) ([]*ProductionSchedule, error) {
	q := s.db.WithContext(ctx).Model(&ProductionSchedule{})
	if status != "" && status != "all" {
		q = q.Where("status = ?", status)
	}
	var schedules []*ProductionSchedule
	if err := q.Order("created_at desc").Find(&schedules).Error; err != nil {
		return nil, err
	}
	for _, schedule := range schedules {
		if err := schedule.DecodeMachines(); err != nil {
			return nil, err
		}
	}
	return schedules, nil
}

func (s *Store) GetScheduleByID(ctx context.Context, id string) (*ProductionSchedule, error) {
	var schedule ProductionSchedule
	if err := s.db.WithContext(ctx).First(&schedule, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := schedule.DecodeMachines(); err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (s *Store) CreateSchedule(ctx context.Context, schedule *ProductionSchedule) error {
	if err := schedule.EncodeMachines(); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Create(schedule).Error
}

func (s *Store) UpdateSchedule(ctx context.Context, schedule *ProductionSchedule) error {
	if err := schedule.EncodeMachines(); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Save(schedule).Error
}

func (s *Store) DeleteSchedule(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&ProductionSchedule{}, "id = ?", id).Error
}

func (s *Store) ListAssemblies(ctx context.Context) ([]*Assembly, error) {
	var assemblies []*Assembly
	err := s.db.WithContext(ctx).
		Order("assembly_start_date desc").
		Find(&assemblies).Error
	return assemblies, err
}

func (s *Store) GetAssemblyByID(ctx context.Context, id string) (*Assembly, error) {
	var assembly Assembly
	if err := s.db.WithContext(ctx).First(&assembly, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &assembly, nil
}

func (s *Store) GetAssemblyByVehicleID(ctx context.Context, vehicleID string) (*Assembly, error) {
	var assembly Assembly
	if err := s.db.WithContext(ctx).First(&assembly, "vehicle_id = ?", vehicleID).Error; err != nil {
		return nil, err
	}
	return &assembly, nil
}

func (s *Store) CreateAssembly(ctx context.Context, assembly *Assembly) error {
	return s.db.WithContext(ctx).Create(assembly).Error
}

func (s *Store) UpdateAssembly(ctx context.Context, assembly *Assembly) error {
	return s.db.WithContext(ctx).Save(assembly).Error
}

func (s *Store) DeleteAssembly(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&Assembly{}, "id = ?", id).Error
}

func (s *Store) ListInspections(ctx context.Context, result string) ([]*Inspection, error) {
	q := s.db.WithContext(ctx).Model(&Inspection{})
	if result != "" && result != "all" {
		q = q.Where("result = ?", result)
	}
	var inspections []*Inspection
	err := q.Order("inspection_date desc").Find(&inspections).Error
	return inspections, err
}

func (s *Store) CreateInspection(ctx context.Context, inspection *Inspection) error {
	return s.db.WithContext(ctx).Create(inspection).Error
}

func (s *Store) ListCosts(ctx context.Context) ([]*ProductionCost, error) {
	var costs []*ProductionCost
	err := s.db.WithContext(ctx).
		Order("calculated_at desc").
		Find(&costs).Error
	return costs, err
}

func (s *Store) CreateCost(ctx context.Context, cost *ProductionCost) error {
	return s.db.WithContext(ctx).Create(cost).Error
}

func (s *Store) ListRecentMetrics(ctx context.Context, n int) ([]*PerformanceMetric, error) {
	var metrics []*PerformanceMetric
	err := s.db.WithContext(ctx).
		Order("date desc").
		Limit(n).
		Find(&metrics).Error
	return metrics, err
}

func (s *Store) ListMetricTrend(ctx context.Context, n int) ([]*PerformanceMetric, error) {
	metrics, err := s.ListRecentMetrics(ctx, n)
	if err != nil {
		return nil, err
	}
	// Reverse into oldest-first order for chart display
	for i, j := 0, len(metrics)-1; i < j; i, j = i+1, j-1 {
		metrics[i], metrics[j] = metrics[j], metrics[i]
	}
	return metrics, nil
}

func (s *Store) CreateMetric(ctx context.Context, metric *PerformanceMetric) error {
	return s.db.WithContext(ctx).Create(metric).Error
}

func (s *Store) ListRecentActivities(ctx context.Context, n int) ([]*Activity, error) {
	var activities []*Activity
	err := s.db.WithContext(ctx).
		Order("created_at desc").
		Limit(n).
		Find(&activities).Error
	return activities, err
}

func (s *Store) CreateActivity(ctx context.Context, activity *Activity) error {
	return s.db.WithContext(ctx).Create(activity).Error
}
