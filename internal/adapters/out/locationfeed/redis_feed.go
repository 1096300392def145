// Package locationfeed stores the latest position pushed by each worker's
// device and serves it to the geofence monitors.
package locationfeed

import (
	"context"
	"strconv"
	"time"

	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/core/ports"

	"github.com/cockroachdb/errors"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	keyPrefix = "attendance:location:"

	fieldLatitude   = "lat"
	fieldLongitude  = "lng"
	fieldReportedAt = "reported_at"
)

var (
	_ ports.LocationProvider = (*RedisFeed)(nil)
	_ ports.LocationSink     = (*RedisFeed)(nil)
)

// RedisFeed keeps one hash per worker. Entries expire after twice maxAge and
// fixes older than maxAge are reported as unavailable.
type RedisFeed struct {
	rdb    *goredis.Client
	maxAge time.Duration
	now    func() time.Time
	logger *zap.Logger
}

// NewRedisFeed connects and pings the server. maxAge <= 0 disables the
// staleness check and the expiry.
func NewRedisFeed(ctx context.Context, addr, password string, db int, maxAge time.Duration, logger *zap.Logger) (*RedisFeed, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errors.Wrapf(err, "connecting to redis at %s", addr)
	}

	logger.Info("location feed connected", zap.String("addr", addr))
	return newRedisFeed(rdb, maxAge, logger), nil
}

func newRedisFeed(rdb *goredis.Client, maxAge time.Duration, logger *zap.Logger) *RedisFeed {
	return &RedisFeed{
		rdb:    rdb,
		maxAge: maxAge,
		now:    time.Now,
		logger: logger.With(zap.String("component", "location-feed")),
	}
}

func (f *RedisFeed) ReportLocation(ctx context.Context, workerID kernel.UUID, fix ports.LocationFix) error {
	key := keyPrefix + workerID.String()

	_, err := f.rdb.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.HSet(ctx, key,
			fieldLatitude, strconv.FormatFloat(fix.Point.Latitude(), 'f', -1, 64),
			fieldLongitude, strconv.FormatFloat(fix.Point.Longitude(), 'f', -1, 64),
			fieldReportedAt, fix.ReportedAt.UTC().Format(time.RFC3339Nano),
		)
		if f.maxAge > 0 {
			pipe.Expire(ctx, key, 2*f.maxAge)
		}
		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "storing location of worker %s", workerID)
	}
	return nil
}

func (f *RedisFeed) CurrentLocation(ctx context.Context, workerID kernel.UUID) (ports.LocationFix, error) {
	values, err := f.rdb.HGetAll(ctx, keyPrefix+workerID.String()).Result()
	if err != nil {
		return ports.LocationFix{}, errors.Wrapf(err, "reading location of worker %s", workerID)
	}
	if len(values) == 0 {
		return ports.LocationFix{}, ports.ErrLocationUnavailable
	}

	fix, err := parseFix(values)
	if err != nil {
		f.logger.Warn("unreadable location entry",
			zap.String("worker_id", workerID.String()), zap.Error(err))
		return ports.LocationFix{}, ports.ErrLocationUnavailable
	}

	if isStale(fix, f.maxAge, f.now()) {
		return ports.LocationFix{}, ports.ErrLocationUnavailable
	}
	return fix, nil
}

func (f *RedisFeed) Close() error {
	return f.rdb.Close()
}

func parseFix(values map[string]string) (ports.LocationFix, error) {
	lat, err := strconv.ParseFloat(values[fieldLatitude], 64)
	if err != nil {
		return ports.LocationFix{}, errors.Wrap(err, "latitude")
	}
	lng, err := strconv.ParseFloat(values[fieldLongitude], 64)
	if err != nil {
		return ports.LocationFix{}, errors.Wrap(err, "longitude")
	}
	reportedAt, err := time.Parse(time.RFC3339Nano, values[fieldReportedAt])
	if err != nil {
		return ports.LocationFix{}, errors.Wrap(err, "reported at")
	}
	point, err := kernel.NewGeoPoint(lat, lng)
	if err != nil {
		return ports.LocationFix{}, err
	}
	return ports.LocationFix{Point: point, ReportedAt: reportedAt}, nil
}

func isStale(fix ports.LocationFix, maxAge time.Duration, now time.Time) bool {
	return maxAge > 0 && now.Sub(fix.ReportedAt) > maxAge
}
