package network

import (
	"context"

	"github.com/fiberdesk/fiberdesk/internal/application/network/dto"
)

// Map returns every node and customer that has both coordinates, in the
// order OLTs, ODCs, ODPs, customers.
func (s *Service) Map(ctx context.Context) (*dto.MapResponse, error) {
	olts, err := s.oltRepo.ListWithCoordinates(ctx)
	if err != nil {
		return nil, err
	}
	odcs, err := s.odcRepo.ListWithCoordinates(ctx)
	if err != nil {
		return nil, err
	}
	odps, err := s.odpRepo.ListWithCoordinates(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.customerRepo.ListWithCoordinates(ctx)
	if err != nil {
		return nil, err
	}

	points := make([]*dto.MapPoint, 0, len(olts)+len(odcs)+len(odps)+len(customers))
	for _, o := range olts {
		points = append(points, &dto.MapPoint{
			Type: dto.PointOLT, ID: o.ID, Name: o.Name,
			Latitude: *o.Latitude, Longitude: *o.Longitude,
			Status: o.Status.String(),
		})
	}
	for _, o := range odcs {
		parent := o.OLTID
		points = append(points, &dto.MapPoint{
			Type: dto.PointODC, ID: o.ID, Name: o.Name,
			Latitude: *o.Latitude, Longitude: *o.Longitude,
			Status: o.Status.String(), ParentID: &parent,
		})
	}
	for _, o := range odps {
		parent := o.ODCID
		points = append(points, &dto.MapPoint{
			Type: dto.PointODP, ID: o.ID, Name: o.Name,
			Latitude: *o.Latitude, Longitude: *o.Longitude,
			Status: o.Status.String(), ParentID: &parent,
		})
	}
	for _, c := range customers {
		points = append(points, &dto.MapPoint{
			Type: dto.PointCustomer, ID: c.ID, Name: c.Name,
			Latitude: *c.Latitude, Longitude: *c.Longitude,
			Status: c.Status.String(), ParentID: c.ODPID,
		})
	}

	s.logger.Debugw("network map built", "points", len(points))
	return &dto.MapResponse{Points: points}, nil
}
