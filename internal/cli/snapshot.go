package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"theme-parity/internal/domain"
	"theme-parity/internal/repository"
	"theme-parity/internal/repository/sqlite"
)

var (
	flagSnapshotNote  string
	flagSnapshotLimit int
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Record and inspect parity runs",
	Long: `Persist the current parity report to a local history database so output can
be compared across runs.

Examples:
  parity snapshot save --note "before header migration"
  parity snapshot list
  parity snapshot show 3
  parity snapshot delete 3`,
}

var snapshotSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the current parity report",
	RunE:  runSnapshotSave,
}

var snapshotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded snapshots",
	RunE:  runSnapshotList,
}

var snapshotShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a recorded snapshot's report",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotShow,
}

var snapshotDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a recorded snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotDelete,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.AddCommand(snapshotSaveCmd)
	snapshotCmd.AddCommand(snapshotListCmd)
	snapshotCmd.AddCommand(snapshotShowCmd)
	snapshotCmd.AddCommand(snapshotDeleteCmd)

	snapshotSaveCmd.Flags().StringVar(&flagSnapshotNote, "note", "", "note to store with the snapshot")
	snapshotListCmd.Flags().IntVar(&flagSnapshotLimit, "limit", 20, "maximum snapshots to list (0 for all)")
}

// opens the snapshot database configured in db_path
func openSnapshotRepo(s *settings) (repository.SnapshotRepository, *sqlite.DB, error) {
	db, err := sqlite.NewDB(sqlite.Config{Path: s.cfg.DBPath})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open snapshot database: %w", err)
	}
	return sqlite.NewSnapshotRepository(db), db, nil
}

func runSnapshotSave(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	if err := s.validateRoots(); err != nil {
		return err
	}
	if err := s.checkGoRoot(); err != nil {
		return err
	}

	reports, err := collectReports(s)
	if err != nil {
		return err
	}

	repo, db, err := openSnapshotRepo(s)
	if err != nil {
		return err
	}
	defer db.Close()

	snapshot := domain.NewSnapshot(flagSnapshotNote, reports)
	if err := repo.Save(cmd.Context(), snapshot); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	fmt.Printf("✓ Saved snapshot #%d (%d themes)\n", snapshot.ID, len(snapshot.Reports))
	return nil
}

func runSnapshotList(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	repo, db, err := openSnapshotRepo(s)
	if err != nil {
		return err
	}
	defer db.Close()

	snapshots, err := repo.List(cmd.Context(), flagSnapshotLimit)
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}

	if len(snapshots) == 0 {
		fmt.Println("No snapshots recorded. Run 'parity snapshot save' first.")
		return nil
	}

	fmt.Println()
	fmt.Println(s.styles.Header.Render(" Snapshots "))
	fmt.Println()
	for _, snapshot := range snapshots {
		fmt.Printf("  %s\n", snapshot.GetDisplayText())
	}
	fmt.Println()

	return nil
}

func runSnapshotShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid snapshot id '%s'", args[0])
	}

	s, err := loadSettings()
	if err != nil {
		return err
	}

	repo, db, err := openSnapshotRepo(s)
	if err != nil {
		return err
	}
	defer db.Close()

	snapshot, err := repo.GetByID(cmd.Context(), id)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(s.styles.Header.Render(fmt.Sprintf(" Snapshot #%d — %s ", snapshot.ID, snapshot.CreatedAt.Format("2006-01-02 15:04"))))
	if snapshot.Note != "" {
		fmt.Println(s.styles.Subtitle.Render(snapshot.Note))
	}
	fmt.Println()

	for i := range snapshot.Reports {
		rep := snapshot.Reports[i]
		fmt.Printf("--- %s ---\n", s.styles.ThemeName.Render(rep.Name))
		fmt.Printf("Go Title: %s\n", domain.FormatValue(rep.DescriptorTitle, "<missing>"))
		fmt.Printf("Bash Title: %s\n", domain.FormatValue(rep.INITitle, "<missing>"))
		fmt.Printf("Bash dialogrc Title: %s\n", domain.FormatTriple(rep.TitleColor, "<missing>"))
		fmt.Printf("Bash dialogrc Screen: %s\n", domain.FormatTriple(rep.ScreenColor, "<missing>"))
		fmt.Println()
	}

	return nil
}

func runSnapshotDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid snapshot id '%s'", args[0])
	}

	s, err := loadSettings()
	if err != nil {
		return err
	}

	repo, db, err := openSnapshotRepo(s)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repo.Delete(cmd.Context(), id); err != nil {
		return err
	}

	fmt.Printf("✓ Deleted snapshot #%d\n", id)
	return nil
}
