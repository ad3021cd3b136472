package evaluation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/17Trust09/Planner/internal/domain"
)

// quantityTokens maps the catalog's count-bearing option strings to their
// numeric meaning. Any vocabulary change here has to stay in sync with the
// option sets in the catalog package.
var quantityTokens = map[string]int{
	"0 Dosen":                0,
	"1 Dose":                 1,
	"2 Dosen":                2,
	"3 Dosen":                3,
	"4 Dosen":                4,
	"5 Dosen":                5,
	"6 Dosen":                6,
	"7 Dosen":                7,
	"8 Dosen":                8,
	"1 Port je Dose":         1,
	"2 Ports je Dose":        2,
	"3 Ports je Dose":        3,
	"4 Ports je Dose":        4,
	"0 AP":                   0,
	"1 AP":                   1,
	"2 AP":                   2,
	"3 AP":                   3,
	"4 AP":                   4,
	"Kein AP im Raum":        0,
	"AP im Raum":             1,
	"AP in Flur/nahe Raum":   1,
	"Optional bei Bedarf":    0,
	"Meshing statt Kabel-AP": 0,
}

var portPattern = regexp.MustCompile(`^(\d+) Ports?$`)

// ParseCount extracts the quantity encoded in a free-text option string.
// Unknown tokens parse to 0.
func ParseCount(selection string) int {
	selection = strings.TrimSpace(selection)
	if n, err := strconv.Atoi(selection); err == nil && n >= 0 {
		return n
	}
	if n, ok := quantityTokens[selection]; ok {
		return n
	}
	if m := portPattern.FindStringSubmatch(selection); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	return 0
}

// maxCount parses every selection of a multi-select topic and keeps the
// maximum. Selections describe best known capacity, not cumulative demand.
func maxCount(selections []string) int {
	max := 0
	for _, s := range selections {
		if n := ParseCount(s); n > max {
			max = n
		}
	}
	return max
}

// SwitchSizeForPorts buckets a port count into the catalog's switch sizes.
func SwitchSizeForPorts(portCount int) string {
	switch {
	case portCount <= 0:
		return "Kein zusätzlicher Switch"
	case portCount <= 8:
		return "8 Ports"
	case portCount <= 16:
		return "16 Ports"
	case portCount <= 24:
		return "24 Ports"
	case portCount <= 48:
		return "48 Ports"
	default:
		return "Mehrere Switches oder 48+ Ports"
	}
}

// SplitPlan sizes two separate switches when PoE and client load should be
// separated.
type SplitPlan struct {
	PoEPorts     int    `json:"poe_ports"`
	PoESwitch    string `json:"poe_switch"`
	ClientPorts  int    `json:"client_ports"`
	ClientSwitch string `json:"client_switch"`
}

// NetworkRollup is the aggregated cabling and switch demand of a project.
type NetworkRollup struct {
	ClientPortsByRoom    map[string]int `json:"client_ports_by_room"`
	APCountByRoom        map[string]int `json:"ap_count_by_room"`
	OutdoorCameraCount   int            `json:"outdoor_camera_count"`
	OutdoorDoorbellCount int            `json:"outdoor_doorbell_count"`
	OutdoorAPCount       int            `json:"outdoor_ap_count"`
	OutdoorPoEDevices    int            `json:"outdoor_poe_devices"`
	TotalClientPorts     int            `json:"total_client_ports"`
	TotalAPCount         int            `json:"total_ap_count"`
	TotalAPPoECables     int            `json:"total_ap_poe_cables"`
	TotalCables          int            `json:"total_cables"`
	ReserveUplinkPorts   int            `json:"reserve_uplink_ports"`
	PortsWithOverhead    int            `json:"ports_with_overhead"`
	RecommendedSwitch    string         `json:"recommended_switch"`
	PoERatio             float64        `json:"poe_ratio"`
	SplitRecommended     bool           `json:"split_recommended"`
	SplitPlan            SplitPlan      `json:"split_plan"`
}

// Rollup aggregates per-room LAN/AP selections and outdoor PoE devices into
// cable totals, an overhead-adjusted port count and a switch recommendation.
func Rollup(project *domain.Project) NetworkRollup {
	clientPortsByRoom := make(map[string]int)
	apCountByRoom := make(map[string]int)

	if project != nil {
		for roomID, room := range project.Rooms {
			if room == nil {
				continue
			}
			socketCount := maxCount(room.Topic("room_lan_socket_count").Selections)
			portsPerSocket := maxCount(room.Topic("room_lan_ports_per_socket").Selections)
			clientPorts := socketCount * portsPerSocket
			apCount := maxCount(room.Topic("room_access_point").Selections)

			if clientPorts > 0 {
				clientPortsByRoom[roomID] = clientPorts
			}
			if apCount > 0 {
				apCountByRoom[roomID] = apCount
			}
		}
	}

	outdoorCamera := maxCount(project.OutdoorTopic("outdoor_camera_count").Selections)
	outdoorDoorbell := maxCount(project.OutdoorTopic("outdoor_doorbell_count").Selections)
	outdoorAP := maxCount(project.OutdoorTopic("outdoor_access_points").Selections)

	totalClientPorts := 0
	for _, n := range clientPortsByRoom {
		totalClientPorts += n
	}
	totalAPCount := 0
	for _, n := range apCountByRoom {
		totalAPCount += n
	}

	outdoorPoEDevices := outdoorCamera + outdoorDoorbell + outdoorAP
	totalAPPoECables := totalAPCount + outdoorPoEDevices
	totalCables := totalClientPorts + totalAPPoECables

	reserve := 0
	if totalCables > 0 {
		reserve = 3
	}
	portsWithOverhead := totalCables + reserve

	poeRatio := 0.0
	if totalCables > 0 {
		poeRatio = float64(outdoorPoEDevices+totalAPCount) / float64(totalCables)
	}
	splitRecommended := portsWithOverhead > 48 || (portsWithOverhead > 24 && poeRatio >= 0.4)

	poePorts := outdoorPoEDevices + totalAPCount
	if poePorts > 0 {
		poePorts++
	}
	clientPorts := totalClientPorts
	if clientPorts > 0 {
		clientPorts += 2
	}

	return NetworkRollup{
		ClientPortsByRoom:    clientPortsByRoom,
		APCountByRoom:        apCountByRoom,
		OutdoorCameraCount:   outdoorCamera,
		OutdoorDoorbellCount: outdoorDoorbell,
		OutdoorAPCount:       outdoorAP,
		OutdoorPoEDevices:    outdoorPoEDevices,
		TotalClientPorts:     totalClientPorts,
		TotalAPCount:         totalAPCount,
		TotalAPPoECables:     totalAPPoECables,
		TotalCables:          totalCables,
		ReserveUplinkPorts:   reserve,
		PortsWithOverhead:    portsWithOverhead,
		RecommendedSwitch:    SwitchSizeForPorts(portsWithOverhead),
		PoERatio:             round2(poeRatio),
		SplitRecommended:     splitRecommended,
		SplitPlan: SplitPlan{
			PoEPorts:     poePorts,
			PoESwitch:    SwitchSizeForPorts(poePorts),
			ClientPorts:  clientPorts,
			ClientSwitch: SwitchSizeForPorts(clientPorts),
		},
	}
}

// RecommendedGlobalNetworkTopics derives suggested selections for the
// global network topics from the rollup, e.g. to prefill the global page.
func RecommendedGlobalNetworkTopics(project *domain.Project) map[string][]string {
	net := Rollup(project)

	switchValue := net.RecommendedSwitch
	if switchValue == "Mehrere Switches oder 48+ Ports" {
		switchValue = "Mehrere Switches"
	}

	poeShare := 0.0
	if net.PortsWithOverhead > 0 {
		poeShare = float64(net.TotalAPPoECables) / float64(net.PortsWithOverhead)
	}
	poeShareValue := "Nein"
	switch {
	case poeShare >= 0.6:
		poeShareValue = "Ja"
	case poeShare >= 0.25:
		poeShareValue = "Vielleicht"
	}

	apCountValue := "Nein"
	if net.TotalAPCount+net.OutdoorAPCount > 0 {
		apCountValue = "Ja"
	}
	poePlanningValue := "Nein"
	if net.TotalAPPoECables > 0 {
		poePlanningValue = "Ja"
	}

	return map[string][]string{
		"global_switch_size": {switchValue},
		"global_switch_poe":  {poeShareValue},
		"global_ap_count":    {apCountValue},
		"global_poe":         {poePlanningValue},
	}
}
