package geofence

import (
	"fmt"

	"locgate/internal/domain/entity"
	domainerrors "locgate/internal/domain/errors"
	"locgate/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// DecodeZones parses a GeoJSON FeatureCollection of Polygon features.
// Recognised properties: id, name, region, active (defaults to true).
// Only the outer ring of each polygon is used.
func DecodeZones(data []byte) ([]*entity.DeliveryZone, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, domainerrors.ErrZoneSourceInvalid.WrapMessage(err.Error())
	}

	zones := make([]*entity.DeliveryZone, 0, len(fc.Features))
	for i, feature := range fc.Features {
		zone, err := zoneFromFeature(feature)
		if err != nil {
			return nil, domainerrors.ErrZoneSourceInvalid.WrapMessage(fmt.Sprintf("feature %d: %v", i, err))
		}
		zones = append(zones, zone)
	}

	return zones, nil
}

// EncodeZones renders zones as a GeoJSON FeatureCollection.
func EncodeZones(zones []*entity.DeliveryZone) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, zone := range zones {
		feature := geojson.NewFeature(zone.Polygon())
		feature.ID = zone.ID.String()
		feature.Properties["id"] = zone.ID.String()
		feature.Properties["name"] = zone.Name
		feature.Properties["active"] = zone.IsActive
		if zone.Region != "" {
			feature.Properties["region"] = zone.Region
		}
		fc.Append(feature)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "marshal zones")
	}

	return data, nil
}

// EncodeBoundary renders a boundary ring as a GeoJSON Polygon geometry.
func EncodeBoundary(boundary []entity.Coordinates) ([]byte, error) {
	zone := entity.DeliveryZone{Boundary: boundary}

	data, err := geojson.NewGeometry(zone.Polygon()).MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "marshal boundary")
	}

	return data, nil
}

// DecodeBoundary parses a GeoJSON Polygon geometry into a boundary ring.
func DecodeBoundary(data []byte) ([]entity.Coordinates, error) {
	geometry, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return nil, errors.Wrap(err, "unmarshal boundary")
	}

	return boundaryFromGeometry(geometry.Geometry())
}

func zoneFromFeature(feature *geojson.Feature) (*entity.DeliveryZone, error) {
	boundary, err := boundaryFromGeometry(feature.Geometry)
	if err != nil {
		return nil, err
	}

	rawID := feature.Properties.MustString("id", "")
	if rawID == "" {
		if id, ok := feature.ID.(string); ok {
			rawID = id
		}
	}

	name := feature.Properties.MustString("name", "")
	if name == "" {
		return nil, errors.New("missing name property")
	}

	id, err := parseZoneID(rawID, name)
	if err != nil {
		return nil, err
	}

	return &entity.DeliveryZone{
		ID:       id,
		Name:     name,
		Region:   feature.Properties.MustString("region", ""),
		Boundary: boundary,
		IsActive: feature.Properties.MustBool("active", true),
	}, nil
}

// parseZoneID accepts a uuid, or derives a stable one from a non-uuid id or the name.
func parseZoneID(raw, name string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.NewSHA1(uuid.NameSpaceURL, []byte("zone:"+name)), nil
	}

	if id, err := uuid.Parse(raw); err == nil {
		return id, nil
	}

	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("zone:"+raw)), nil
}

func boundaryFromGeometry(geometry orb.Geometry) ([]entity.Coordinates, error) {
	polygon, ok := geometry.(orb.Polygon)
	if !ok {
		return nil, fmt.Errorf("geometry must be a Polygon, got %T", geometry)
	}
	if len(polygon) == 0 {
		return nil, errors.New("polygon has no rings")
	}

	ring := polygon[0]
	if ring.Closed() && len(ring) > 1 {
		ring = ring[:len(ring)-1]
	}

	boundary := make([]entity.Coordinates, 0, len(ring))
	for _, point := range ring {
		boundary = append(boundary, entity.CoordinatesFromPoint(point))
	}

	return boundary, nil
}
