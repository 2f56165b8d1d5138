package statistics

import (
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/gonuboard/gonuboard/app/models"
	"github.com/gonuboard/gonuboard/internal/pkg/cache"
	"github.com/gonuboard/gonuboard/internal/pkg/database"
)

const (
	CacheKeyMembersTotal = "statistics:members:total"
	CacheKeyMembersDaily = "statistics:members:daily:%s" // Format with date YYYY-MM-DD
	CacheKeyPointsTotal  = "statistics:points:total"
	CacheExpiration      = 30 * time.Minute
)

// MemberStatistics backs the header of the admin member list
type MemberStatistics struct {
	TotalMembers  int
	TodayMembers  int
	TotalSocial   int
	PointsGranted int
}

var (
	lastCacheUpdate     time.Time
	cacheUpdateMutex    sync.Mutex
	cacheUpdateInterval = 5 * time.Minute
)

// UpdateCacheIfNeeded refreshes the cached counters at most once per interval
func UpdateCacheIfNeeded() {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	if time.Since(lastCacheUpdate) <= cacheUpdateInterval {
		return
	}
	if err := UpdateStatisticsCache(); err != nil {
		log.Printf("Failed to update member statistics cache: %v", err)
		return
	}
	lastCacheUpdate = time.Now()
}

// UpdateStatisticsCache recounts members and granted points into Redis
func UpdateStatisticsCache() error {
	db := database.GetDB()

	var totalMembers int64
	if err := db.Model(&models.Member{}).Count(&totalMembers).Error; err != nil {
		return err
	}
	if err := cache.Set(CacheKeyMembersTotal, totalMembers, CacheExpiration); err != nil {
		return err
	}

	today := time.Now().Format("2006-01-02")
	var todayMembers int64
	if err := db.Model(&models.Member{}).
		Where("DATE(mb_datetime) = ?", today).
		Count(&todayMembers).Error; err != nil {
		return err
	}
	if err := cache.Set(fmt.Sprintf(CacheKeyMembersDaily, today), todayMembers, CacheExpiration); err != nil {
		return err
	}

	var points int64
	if err := db.Model(&models.Point{}).
		Select("COALESCE(SUM(po_point), 0)").
		Row().Scan(&points); err != nil {
		return err
	}
	return cache.Set(CacheKeyPointsTotal, points, CacheExpiration)
}

// GetMemberStatistics reads the cached counters, falling back to live counts
// on a cache miss
func GetMemberStatistics() MemberStatistics {
	stats := MemberStatistics{}
	db := database.GetDB()

	if v, err := cache.GetInt(CacheKeyMembersTotal); err == nil {
		stats.TotalMembers = v
	} else {
		var n int64
		if err := db.Model(&models.Member{}).Count(&n).Error; err == nil {
			stats.TotalMembers = int(n)
			_ = cache.Set(CacheKeyMembersTotal, n, CacheExpiration)
		}
	}

	today := time.Now().Format("2006-01-02")
	if v, err := cache.GetInt(fmt.Sprintf(CacheKeyMembersDaily, today)); err == nil {
		stats.TodayMembers = v
	} else {
		var n int64
		if err := db.Model(&models.Member{}).
			Where("DATE(mb_datetime) = ?", today).
			Count(&n).Error; err == nil {
			stats.TodayMembers = int(n)
		}
	}

	var social int64
	if err := db.Model(&models.MemberSocialProfile{}).Count(&social).Error; err == nil {
		stats.TotalSocial = int(social)
	}

	if raw, err := cache.Get(CacheKeyPointsTotal); err == nil {
		if v, err := strconv.Atoi(raw); err == nil {
			stats.PointsGranted = v
		}
	}

	return stats
}
