package network

import (
	"context"

	"github.com/fiberdesk/fiberdesk/internal/application/network/dto"
	"github.com/fiberdesk/fiberdesk/internal/domain/network"
	"github.com/fiberdesk/fiberdesk/internal/shared/mapper"
)

// Hierarchy builds the active OLT → ODC → ODP tree with customer counts per
// ODP. Each level is one query keyed by the parent ids of the level above,
// so an inactive node prunes its whole subtree.
func (s *Service) Hierarchy(ctx context.Context) (*dto.HierarchyResponse, error) {
	olts, err := s.oltRepo.ListActive(ctx)
	if err != nil {
		s.logger.Errorw("failed to load OLTs for hierarchy", "error", err)
		return nil, err
	}

	odcs, err := s.odcRepo.ListActiveByOLTIDs(ctx, mapper.MapSlice(olts, func(o *network.OLT) uint { return o.ID }))
	if err != nil {
		s.logger.Errorw("failed to load ODCs for hierarchy", "error", err)
		return nil, err
	}

	odps, err := s.odpRepo.ListActiveByODCIDs(ctx, mapper.MapSlice(odcs, func(o *network.ODC) uint { return o.ID }))
	if err != nil {
		s.logger.Errorw("failed to load ODPs for hierarchy", "error", err)
		return nil, err
	}

	customerCounts, err := s.customerRepo.CountByODPIDs(ctx, mapper.MapSlice(odps, func(o *network.ODP) uint { return o.ID }))
	if err != nil {
		s.logger.Errorw("failed to count customers for hierarchy", "error", err)
		return nil, err
	}

	odpsByODC := mapper.GroupBy(odps, func(o *network.ODP) uint { return o.ODCID })
	odcsByOLT := mapper.GroupBy(odcs, func(o *network.ODC) uint { return o.OLTID })

	tree := make([]*dto.OLTNode, 0, len(olts))
	for _, olt := range olts {
		oltNode := &dto.OLTNode{
			ID:         olt.ID,
			Name:       olt.Name,
			Location:   olt.Location,
			TotalPorts: olt.Ports.Total,
			UsedPorts:  olt.Ports.Used,
			Status:     olt.Status.String(),
			ODCs:       make([]*dto.ODCNode, 0, len(odcsByOLT[olt.ID])),
		}
		for _, odc := range odcsByOLT[olt.ID] {
			odcNode := &dto.ODCNode{
				ID:         odc.ID,
				Name:       odc.Name,
				Location:   odc.Location,
				TotalPorts: odc.Ports.Total,
				UsedPorts:  odc.Ports.Used,
				Status:     odc.Status.String(),
				ODPs:       make([]*dto.ODPNode, 0, len(odpsByODC[odc.ID])),
			}
			for _, odp := range odpsByODC[odc.ID] {
				odcNode.ODPs = append(odcNode.ODPs, &dto.ODPNode{
					ID:         odp.ID,
					Name:       odp.Name,
					Location:   odp.Location,
					TotalPorts: odp.Ports.Total,
					UsedPorts:  odp.Ports.Used,
					Status:     odp.Status.String(),
					Customers:  customerCounts[odp.ID],
				})
			}
			oltNode.ODCs = append(oltNode.ODCs, odcNode)
		}
		tree = append(tree, oltNode)
	}

	return &dto.HierarchyResponse{Hierarchy: tree}, nil
}
