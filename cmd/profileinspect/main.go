package main

import (
	"flag"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/lintang-b-s/tilenav/pkg"
	"github.com/lintang-b-s/tilenav/pkg/costing"
	"github.com/lintang-b-s/tilenav/pkg/datastructure"
	"github.com/lintang-b-s/tilenav/pkg/logger"
)

var (
	configPath = flag.String("config", "", "costing config file (yaml). empty = mode defaults")
)

// profileinspect constructs every travel-mode costing from a config and
// reports the derived search parameters plus filter decisions over a small
// synthetic edge set. useful for sanity-checking a costing config before
// deploying it.
func main() {
	flag.Parse()

	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	var v *viper.Viper
	if *configPath != "" {
		v = viper.New()
		v.SetConfigFile(*configPath)
		if err := v.ReadInConfig(); err != nil {
			log.Fatal("read costing config", zap.Error(err))
		}
	}

	modes := []pkg.TravelMode{
		pkg.TRAVEL_MODE_AUTO,
		pkg.TRAVEL_MODE_PEDESTRIAN,
		pkg.TRAVEL_MODE_BICYCLE,
	}

	edges := sampleEdges()

	for _, mode := range modes {
		cost, err := costing.NewCost(mode, v)
		if err != nil {
			log.Fatal("construct costing", zap.String("mode", mode.String()), zap.Error(err))
		}

		log.Info("costing profile",
			zap.String("mode", mode.String()),
			zap.Bool("allow_transitions", cost.AllowTransitions()),
			zap.Float64("astar_cost_factor", cost.AStarCostFactor()),
			zap.Float64("unit_size", cost.UnitSize()),
			zap.Int("hierarchy_levels", len(cost.GetHierarchyLimits())),
		)

		filter := cost.GetFilter()
		for _, edge := range edges {
			log.Info("edge",
				zap.String("mode", mode.String()),
				zap.Uint32("edge_id", uint32(edge.GetEdgeId())),
				zap.Bool("snappable", filter(edge)),
				zap.Bool("oneway", edge.IsOneWay()),
				zap.Bool("allowed", cost.Allowed(edge, 0, false, 10000.0)),
				zap.Float64("cost", cost.GetCost(edge)),
				zap.Float64("seconds", cost.GetSeconds(edge)),
			)
		}
	}
}

func sampleEdges() []*datastructure.DirectedEdge {
	motorway := datastructure.NewDirectedEdge(1, 1500.0, 100.0,
		pkg.ACCESS_AUTO|pkg.ACCESS_TRUCK, 0, pkg.MOTORWAY, pkg.USE_ROAD)

	motorway.SetOneWay(true)

	residential := datastructure.NewDirectedEdge(2, 300.0, 30.0,
		pkg.ACCESS_ALL, 1, pkg.RESIDENTIAL, pkg.USE_ROAD)

	footway := datastructure.NewDirectedEdge(3, 120.0, 0.0,
		pkg.ACCESS_PEDESTRIAN, 2, pkg.SERVICE_OTHER, pkg.USE_FOOTWAY)

	cycleway := datastructure.NewDirectedEdge(4, 800.0, 0.0,
		pkg.ACCESS_BICYCLE|pkg.ACCESS_PEDESTRIAN, 3, pkg.SERVICE_OTHER, pkg.USE_CYCLEWAY)

	notThru := datastructure.NewDirectedEdge(5, 200.0, 20.0,
		pkg.ACCESS_ALL, 4, pkg.LIVING_STREET, pkg.USE_ROAD)
	notThru.SetNotThru(true)

	return []*datastructure.DirectedEdge{motorway, residential, footway, cycleway, notThru}
}
