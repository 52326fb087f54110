package mongodb

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/database"
)

const dailyAttendanceCollection = "daily_attendance"

// dailyAttendanceDoc is the document shape written by the nightly
// attendance pipeline. Check-in and check-out are "HH:MM" strings.
type dailyAttendanceDoc struct {
	EmployeeID    string  `bson:"employee_id"`
	Date          string  `bson:"date"`
	CheckIn       *string `bson:"check_in"`
	CheckOut      *string `bson:"check_out"`
	Status        string  `bson:"status"`
	LateMinutes   int     `bson:"late_minutes"`
	WorkingHours  float64 `bson:"working_hours"`
	OvertimeHours float64 `bson:"overtime_hours"`
}

type dailyAttendanceRepository struct {
	collection *mongo.Collection
}

func NewDailyAttendanceRepository(db *database.MongoDB) attendance.DailyAttendanceRepository {
	return &dailyAttendanceRepository{
		collection: db.Database.Collection(dailyAttendanceCollection),
	}
}

func (r *dailyAttendanceRepository) ListDaily(ctx context.Context, employeeIDs []string, dateRange attendance.DateRange) ([]attendance.DailyAttendance, error) {
	filter := bson.M{
		"employee_id": bson.M{"$in": employeeIDs},
		"date":        bson.M{"$gte": dateRange.Start, "$lte": dateRange.End},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "employee_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily attendance: %w", err)
	}
	defer cursor.Close(ctx)

	var records []attendance.DailyAttendance
	for cursor.Next(ctx) {
		var doc dailyAttendanceDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode daily attendance document: %w", err)
		}
		rec, err := doc.toEntity()
		if err != nil {
			slog.Warn("skipping malformed daily attendance document",
				"employee_id", doc.EmployeeID,
				"date", doc.Date,
				"error", err,
			)
			continue
		}
		records = append(records, rec)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to read daily attendance: %w", err)
	}

	return records, nil
}

func (d dailyAttendanceDoc) toEntity() (attendance.DailyAttendance, error) {
	rec := attendance.DailyAttendance{
		EmployeeID:    d.EmployeeID,
		Date:          d.Date,
		Status:        attendance.Status(d.Status),
		LateMinutes:   d.LateMinutes,
		WorkingHours:  d.WorkingHours,
		OvertimeHours: d.OvertimeHours,
	}
	if d.CheckIn != nil {
		t, err := attendance.ParseTimeOfDay(*d.CheckIn)
		if err != nil {
			return attendance.DailyAttendance{}, err
		}
		rec.CheckIn = &t
	}
	if d.CheckOut != nil {
		t, err := attendance.ParseTimeOfDay(*d.CheckOut)
		if err != nil {
			return attendance.DailyAttendance{}, err
		}
		rec.CheckOut = &t
	}
	return rec, nil
}
