package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"crusade-tracker/models"
	"crusade-tracker/services"
	"crusade-tracker/storage"
	"crusade-tracker/workers"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	command := os.Args[1]
	args := os.Args[2:]

	gateway, err := storage.Open(getenv("CRUSADE_DB_PATH", "crusade.db"))
	if err != nil {
		log.Fatal("failed to open store: ", err)
	}
	defer gateway.Close()

	store, err := services.Load(gateway)
	if err != nil {
		log.Fatal("failed to load store: ", err)
	}

	if err := dispatch(store, command, args); err != nil {
		log.Fatal(err)
	}
}

func dispatch(store *services.Store, command string, args []string) error {
	switch command {
	case "seed":
		return runSeed(store)
	case "players":
		return runPlayers(store)
	case "add-player":
		return runAddPlayer(store, args)
	case "update-player":
		return runUpdatePlayer(store, args)
	case "remove-player":
		return runRemovePlayer(store, args)
	case "roster":
		return runRoster(store, args)
	case "add-unit":
		return runAddUnit(store, args)
	case "remove-unit":
		return runRemoveUnit(store, args)
	case "kills":
		return runKills(store, args)
	case "logs":
		return runLogs(store, args)
	case "log-battle":
		return runLogBattle(store, args)
	case "remove-log":
		return runRemoveLog(store, args)
	case "stats":
		return runStats(store)
	case "backup":
		return runBackup(store, args)
	case "restore":
		return runRestore(store, args)
	case "watch":
		return runWatch(store)
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Crusade campaign tracker

Usage: crusade-tracker <command> [flags]

Commands:
  seed            install the demo roster into an empty store
  players         show every player with their roster summary
  add-player      register a player (-name -army -team [-id])
  update-player   rename a player (-id -name -army -team)
  remove-player   remove a player and cascade (-id -yes)
  roster          show datacards ([-player -team -role -search])
  add-unit        add a datacard (see -h for fields)
  remove-unit     remove a datacard (-id)
  kills           bump a datacard's kill tally (-id [-units -monsters])
  logs            show battle logs ([-team -player -result -search])
  log-battle      record a battle (see -h for fields)
  remove-log      remove a battle log (-id)
  stats           show campaign statistics
  backup          export the store to a JSON backup ([-out path])
  restore         replace the store from a JSON backup (-in path -yes)
  watch           run the periodic auto-backup worker`)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitIDs parses a comma-separated id list flag: trim each token,
// drop empties.
func splitIDs(raw string) []string {
	var ids []string
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token != "" {
			ids = append(ids, token)
		}
	}
	return ids
}

func runSeed(store *services.Store) error {
	if err := store.SeedDemo(); err != nil {
		return err
	}
	log.Println("✅ Demo roster installed")
	return nil
}

func runPlayers(store *services.Store) error {
	players := store.Players()
	if len(players) == 0 {
		fmt.Println("No players registered.")
		return nil
	}
	summaries := make(map[string]services.RosterSummary)
	for _, s := range services.SummarizeRoster(store.Units()) {
		summaries[s.PlayerID] = s
	}
	for _, p := range players {
		s := summaries[p.ID]
		fmt.Printf("%s  %s – %s [%s]\n", p.ID, p.Name, p.ArmyName, p.Team)
		fmt.Printf("    units %d · points %d · kills %d · honours %d · scars %d\n",
			s.UnitCount, s.TotalPoints, s.TotalKills, s.Honours, s.Scars)
	}
	return nil
}

func runAddPlayer(store *services.Store, args []string) error {
	fs := flag.NewFlagSet("add-player", flag.ExitOnError)
	id := fs.String("id", "", "player id (derived from name when empty)")
	name := fs.String("name", "", "player name")
	army := fs.String("army", "", "army name")
	team := fs.String("team", "", "team: Defenders | Attackers | Raiders")
	if err := fs.Parse(args); err != nil {
		return err
	}

	player, err := store.CreatePlayer(services.PlayerInput{ID: *id, Name: *name, ArmyName: *army, Team: *team})
	if err != nil {
		return err
	}
	log.Printf("✅ Player %s registered (%s)", player.Name, player.ID)
	return nil
}

func runUpdatePlayer(store *services.Store, args []string) error {
	fs := flag.NewFlagSet("update-player", flag.ExitOnError)
	id := fs.String("id", "", "player id")
	name := fs.String("name", "", "player name")
	army := fs.String("army", "", "army name")
	team := fs.String("team", "", "team: Defenders | Attackers | Raiders")
	if err := fs.Parse(args); err != nil {
		return err
	}

	player, err := store.UpdatePlayer(*id, services.PlayerInput{Name: *name, ArmyName: *army, Team: *team})
	if err != nil {
		return err
	}
	log.Printf("✅ Player %s updated", player.ID)
	return nil
}

func runRemovePlayer(store *services.Store, args []string) error {
	fs := flag.NewFlagSet("remove-player", flag.ExitOnError)
	id := fs.String("id", "", "player id")
	confirm := fs.Bool("yes", false, "confirm the removal")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !*confirm {
		return errors.New("removing a player also removes their units and log references; re-run with -yes to confirm")
	}
	if err := store.DeletePlayer(*id); err != nil {
		return err
	}
	log.Printf("✅ Player %s removed (units and log references cascaded)", *id)
	return nil
}

func runRoster(store *services.Store, args []string) error {
	fs := flag.NewFlagSet("roster", flag.ExitOnError)
	player := fs.String("player", "", "filter by player id")
	team := fs.String("team", "", "filter by team")
	role := fs.String("role", "", "filter by battlefield role")
	search := fs.String("search", "", "free-text search")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filtered := services.FilterUnits(store.Units(), services.UnitFilter{
		Team:     *team,
		PlayerID: *player,
		Role:     *role,
		Search:   *search,
	})
	if len(filtered) == 0 {
		fmt.Println("No units match the current filters.")
		return nil
	}

	for _, group := range services.GroupUnitsByPlayer(filtered) {
		fmt.Printf("%s – %s [%s] · %d unit(s)\n", group.PlayerName, group.ArmyName, group.Team, len(group.Units))
		for _, u := range group.Units {
			printUnit(u)
		}
	}
	return nil
}

func printUnit(u models.Unit) {
	badges := ""
	if u.IsEpicHero {
		badges += " [Epic Hero]"
	}
	if u.IsWarlord() {
		badges += " [Warlord]"
	}
	name := u.UnitName
	if u.UniqueName != "" {
		name += " – " + u.UniqueName
	}
	fmt.Printf("  %s (%s)%s\n", name, u.BattlefieldRole, badges)
	fmt.Printf("    %d pts · %d model(s) · %s\n", u.Points, u.Models, u.Faction)
	fmt.Printf("    XP %d · %s · CP %d\n", u.Experience, u.Rank, u.CrusadePoints)
	pips := services.KillPips(u)
	fmt.Printf("    honours %d · scars %d · kills %s (%d total)\n",
		len(u.BattleHonours), len(u.BattleScars),
		strings.Repeat("●", pips)+strings.Repeat("○", services.MaxKillPips-pips),
		services.TotalKills(u))
	fmt.Printf("    id %s\n", u.ID)
}

func runAddUnit(store *services.Store, args []string) error {
	fs := flag.NewFlagSet("add-unit", flag.ExitOnError)
	player := fs.String("player", "", "owning player id")
	name := fs.String("name", "", "unit name")
	unique := fs.String("unique", "", "unique name")
	faction := fs.String("faction", "", "faction")
	subfaction := fs.String("subfaction", "", "subfaction or detachment")
	role := fs.String("role", models.RoleOtherDatasheets, "battlefield role")
	epic := fs.Bool("epic", false, "epic hero")
	keywords := fs.String("keywords", "", "comma-separated keywords")
	points := fs.Int("points", 0, "points cost")
	unitModels := fs.Int("models", 1, "model count")
	xp := fs.Int("xp", 0, "experience")
	rank := fs.String("rank", models.RankBattleReady, "crusade rank")
	cp := fs.Int("cp", 0, "crusade points")
	notes := fs.String("notes", "", "notes")
	image := fs.String("image", "", "image URL")
	if err := fs.Parse(args); err != nil {
		return err
	}

	unit, err := store.CreateUnit(services.UnitInput{
		UnitName:               *name,
		Faction:                *faction,
		SubfactionOrDetachment: *subfaction,
		BattlefieldRole:        *role,
		IsEpicHero:             *epic,
		Keywords:               *keywords,
		UniqueName:             *unique,
		Points:                 *points,
		Models:                 *unitModels,
		Experience:             *xp,
		Rank:                   *rank,
		CrusadePoints:          *cp,
		Notes:                  *notes,
		Image:                  *image,
		PlayerID:               *player,
	})
	if err != nil {
		return err
	}
	log.Printf("✅ Unit %s added (%s)", unit.UnitName, unit.ID)
	return nil
}

func runRemoveUnit(store *services.Store, args []string) error {
	fs := flag.NewFlagSet("remove-unit", flag.ExitOnError)
	id := fs.String("id", "", "unit id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := store.DeleteUnit(*id); err != nil {
		return err
	}
	log.Printf("✅ Unit %s removed", *id)
	return nil
}

func runKills(store *services.Store, args []string) error {
	fs := flag.NewFlagSet("kills", flag.ExitOnError)
	id := fs.String("id", "", "unit id")
	units := fs.Int("units", 0, "units destroyed")
	monsters := fs.Int("monsters", 0, "monsters or vehicles destroyed")
	if err := fs.Parse(args); err != nil {
		return err
	}
	unit, err := store.AddUnitKills(*id, *units, *monsters)
	if err != nil {
		return err
	}
	log.Printf("✅ %s now at %d kill(s)", unit.UnitName, services.TotalKills(unit))
	return nil
}

func runLogs(store *services.Store, args []string) error {
	fs := flag.NewFlagSet("logs", flag.ExitOnError)
	team := fs.String("team", "", "filter by involved team")
	player := fs.String("player", "", "filter by participant player id")
	result := fs.String("result", "", "filter by winner (a team or Draw)")
	search := fs.String("search", "", "free-text search")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filtered := services.FilterLogs(store.Logs(), services.LogFilter{
		Team:     *team,
		PlayerID: *player,
		Result:   *result,
		Search:   *search,
	})
	if len(filtered) == 0 {
		fmt.Println("No battle logs match the current filters.")
		return nil
	}

	for _, l := range services.SortLogs(filtered) {
		date := l.Date
		if date == "" {
			date = services.NoDate
		}
		fmt.Printf("%s  %s · %s vs %s · winner: %s\n", date, l.SessionName, l.AttackerTeam, l.DefenderTeam, l.WinnerTeam)
		if l.Mission != "" || l.Location != "" {
			fmt.Printf("    %s @ %s\n", l.Mission, l.Location)
		}
		if l.PointsLevel != nil {
			fmt.Printf("    %d pts level\n", *l.PointsLevel)
		}
		if len(l.AttackerPlayerIDs) > 0 || len(l.DefenderPlayerIDs) > 0 {
			fmt.Printf("    attackers: %s · defenders: %s\n",
				strings.Join(l.AttackerPlayerIDs, ", "), strings.Join(l.DefenderPlayerIDs, ", "))
		}
		fmt.Printf("    id %s\n", l.ID)
	}
	return nil
}

func runLogBattle(store *services.Store, args []string) error {
	fs := flag.NewFlagSet("log-battle", flag.ExitOnError)
	date := fs.String("date", "", "battle date (ISO, e.g. 2026-08-31)")
	session := fs.String("session", "", "session name")
	mission := fs.String("mission", "", "mission")
	location := fs.String("location", "", "location")
	points := fs.Int("points", 0, "points level (0 = not recorded)")
	attacker := fs.String("attacker", "", "attacking team")
	defender := fs.String("defender", "", "defending team")
	winner := fs.String("winner", "", "winning team or Draw")
	attackerPlayers := fs.String("attacker-players", "", "comma-separated attacker player ids")
	defenderPlayers := fs.String("defender-players", "", "comma-separated defender player ids")
	notes := fs.String("notes", "", "notes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	battleLog, err := store.CreateBattleLog(services.BattleLogInput{
		Date:              *date,
		SessionName:       *session,
		Mission:           *mission,
		Location:          *location,
		PointsLevel:       *points,
		AttackerTeam:      *attacker,
		DefenderTeam:      *defender,
		WinnerTeam:        *winner,
		AttackerPlayerIDs: splitIDs(*attackerPlayers),
		DefenderPlayerIDs: splitIDs(*defenderPlayers),
		Notes:             *notes,
	})
	if err != nil {
		return err
	}
	log.Printf("✅ Battle logged (%s)", battleLog.ID)
	return nil
}

func runRemoveLog(store *services.Store, args []string) error {
	fs := flag.NewFlagSet("remove-log", flag.ExitOnError)
	id := fs.String("id", "", "battle log id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := store.DeleteBattleLog(*id); err != nil {
		return err
	}
	log.Printf("✅ Battle log %s removed", *id)
	return nil
}

func runStats(store *services.Store) error {
	logs := store.Logs()
	fmt.Printf("Players: %d · Units: %d · Battles: %d · Last battle: %s\n",
		len(store.Players()), len(store.Units()), len(logs), services.LatestLogDate(logs))

	for _, r := range services.TeamRecords(logs) {
		fmt.Printf("  %-10s battles %d · wins %d · draws %d · losses %d\n",
			r.Team, r.Battles, r.Wins, r.Draws, r.Losses)
	}
	for _, s := range services.SummarizeRoster(store.Units()) {
		fmt.Printf("  %s (%s): %d unit(s), %d pts, %d kill(s)\n",
			s.PlayerName, s.Team, s.UnitCount, s.TotalPoints, s.TotalKills)
	}
	return nil
}

func runBackup(store *services.Store, args []string) error {
	fs := flag.NewFlagSet("backup", flag.ExitOnError)
	out := fs.String("out", "", "output path (default: generated name in CRUSADE_BACKUP_DIR)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	now := time.Now()
	path := *out
	if path == "" {
		dir := getenv("CRUSADE_BACKUP_DIR", "backups")
		path = filepath.Join(dir, storage.BackupFilename(campaignName(), now))
	}
	if err := storage.WriteBackup(path, store.Snapshot(), now); err != nil {
		return err
	}
	log.Printf("✅ Backup written: %s", path)
	return nil
}

func runRestore(store *services.Store, args []string) error {
	fs := flag.NewFlagSet("restore", flag.ExitOnError)
	in := fs.String("in", "", "backup file to restore")
	confirm := fs.Bool("yes", false, "confirm replacing the current store")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return errors.New("restore requires -in <backup.json>")
	}
	if !*confirm {
		return errors.New("restore replaces every player, unit and log; re-run with -yes to confirm")
	}

	snap, err := storage.ReadBackup(*in)
	if err != nil {
		return err
	}
	store.Replace(snap)
	if err := store.Flush(); err != nil {
		return err
	}
	log.Printf("✅ Restored %d player(s), %d unit(s), %d log(s) from %s",
		len(snap.Players), len(snap.Units), len(snap.Logs), *in)
	return nil
}

func runWatch(store *services.Store) error {
	interval, err := time.ParseDuration(getenv("CRUSADE_BACKUP_INTERVAL", "15m"))
	if err != nil {
		return fmt.Errorf("invalid CRUSADE_BACKUP_INTERVAL: %w", err)
	}

	worker := workers.NewBackupWorker(store, getenv("CRUSADE_BACKUP_DIR", "backups"), campaignName(), interval)
	if err := worker.Start(); err != nil {
		return err
	}
	defer worker.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	log.Println("Shutting down backup worker...")
	return nil
}

func campaignName() string {
	return getenv("CRUSADE_CAMPAIGN_NAME", "Crusade Campaign")
}
