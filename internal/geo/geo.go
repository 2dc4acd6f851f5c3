package geo

import (
	"fmt"
	"math"

	"github.com/ipetrova/family_tracking_system/internal/models"
)

// earthRadiusMeters - средний радиус Земли для сферического приближения
const earthRadiusMeters = 6371000.0

// ValidateCoordinates проверяет, что широта и долгота находятся в допустимых диапазонах
func ValidateCoordinates(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude %f", models.ErrInvalidCoordinate, lat)
	}
	if lon < -180 || lon > 180 {
		return fmt.Errorf("%w: longitude %f", models.ErrInvalidCoordinate, lon)
	}
	return nil
}

// DistanceMeters вычисляет расстояние между двумя точками по формуле гаверсинусов
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// IsOutsideSafeZone сообщает, находится ли точка за пределами безопасной зоны
func IsOutsideSafeZone(lat, lon, homeLat, homeLon, radiusMeters float64) bool {
	return DistanceMeters(lat, lon, homeLat, homeLon) > radiusMeters
}
