package main

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/saptest/autopets/internal/config"
	"github.com/saptest/autopets/internal/petdb"
	"github.com/saptest/autopets/internal/sap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables only")
	} else {
		log.Println("loaded environment from .env")
	}

	log.Println("================================")
	log.Println(" SAP ENGINE - HEADLESS SIMULATOR")
	log.Println("================================")

	appConfig := config.Load()

	if appConfig.Database.Filename != "" {
		if err := petdb.LoadOverrides(appConfig.Database.Filename); err != nil {
			log.Fatalf("loading database overrides: %v", err)
		}
		log.Printf("loaded database overrides from %s", appConfig.Database.Filename)
	}

	log.Printf("engine runtime budget: %d trigger firings/phase", appConfig.Engine.RuntimeBudget)

	seedA := getEnvInt64("SAP_SEED_A", 1)
	seedB := getEnvInt64("SAP_SEED_B", 2)

	var history *sap.History
	if appConfig.General.BuildGraph {
		history = sap.NewHistory(500, 50)
		log.Println("causal history graph enabled")
	}

	teamA := buildDemoTeam("Team A", seedA, history).WithBudget(appConfig.Engine.RuntimeBudget)
	teamB := buildDemoTeam("Team B", seedB, history).WithBudget(appConfig.Engine.RuntimeBudget)

	log.Printf("%s: %d gold, %d pets", teamA.Name, teamA.Gold, countPets(teamA))
	log.Printf("%s: %d gold, %d pets", teamB.Name, teamB.Gold, countPets(teamB))

	for {
		result, err := teamA.Fight(teamB)
		if err != nil {
			log.Fatalf("combat phase failed: %v", err)
		}
		if result != sap.ResultNone {
			log.Printf("battle finished: %s", resultString(result))
			break
		}
	}

	if history != nil {
		path := getEnvWithDefault("SAP_HISTORY_PNG", "history.png")
		if err := history.RenderPNG(path, 1600, 400); err != nil {
			log.Printf("rendering history graph: %v", err)
		} else {
			log.Printf("wrote causal history graph to %s (%d nodes, %d dropped)", path, len(history.Nodes), history.Dropped())
		}
	}
}

func buildDemoTeam(name string, seed int64, history *sap.History) *sap.Team {
	team := sap.NewTeam(name, sap.DefaultMaxSize, seed).WithHistory(history)
	for _, petName := range []string{"Ant", "Cricket", "Fish", "Otter", "Beaver"} {
		rec, err := petdb.Pet(petName)
		if err != nil {
			log.Fatalf("building demo team %q: %v", name, err)
		}
		pet := sap.NewPetFromRecord(rec, 1)
		if err := team.AddPet(pet); err != nil {
			log.Fatalf("building demo team %q: %v", name, err)
		}
	}
	return team
}

func countPets(team *sap.Team) int {
	n := 0
	for _, p := range team.Friends {
		if p != nil {
			n++
		}
	}
	return n
}

func resultString(r sap.Result) string {
	switch r {
	case sap.ResultWin:
		return "Team A wins"
	case sap.ResultLoss:
		return "Team B wins"
	case sap.ResultTie:
		return "tie"
	default:
		return "unknown"
	}
}

func getEnvWithDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt64(key string, defaultVal int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return defaultVal
}
