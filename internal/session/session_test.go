package session_test

import (
	"github.com/kataras/golog"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mazelab/internal/anim"
	"github.com/san-kum/mazelab/internal/config"
	"github.com/san-kum/mazelab/internal/grid"
	"github.com/san-kum/mazelab/internal/maze"
	"github.com/san-kum/mazelab/internal/report"
	"github.com/san-kum/mazelab/internal/search"
	"github.com/san-kum/mazelab/internal/session"
)

func drain(s *session.Session) anim.Frame {
	for i := 0; i < 10000; i++ {
		if f := s.Tick(); f.Done {
			return f
		}
	}
	Fail("run did not terminate")
	return anim.Frame{}
}

func countMarks(g *grid.Grid) int {
	return g.Count(grid.Visited) + g.Count(grid.PathFound)
}

var _ = Describe("Session", func() {
	var (
		cfg      *config.Config
		s        *session.Session
		finished []report.Report
	)

	BeforeEach(func() {
		cfg = config.DefaultConfig()
		cfg.Height, cfg.Width = 11, 11
		cfg.Seed = 42
		finished = nil

		var err error
		s, err = session.New(cfg,
			session.WithLogger(golog.New().SetLevel("disable")),
			session.WithOnFinish(func(r report.Report) { finished = append(finished, r) }),
		)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("New", func() {
		It("generates a maze with the configured seed", func() {
			Expect(s.Seed()).To(Equal(int64(42)))
			Expect(s.Maze().Height()).To(Equal(11))
			Expect(s.Maze().At(maze.StartPos())).To(Equal(grid.Start))
			Expect(s.Maze().At(maze.EndPos(11, 11))).To(Equal(grid.End))
			Expect(s.Status()).To(Equal(search.Idle))
			Expect(s.Running()).To(BeFalse())
		})

		It("rounds even sizes up to odd", func() {
			cfg.Height, cfg.Width = 16, 16
			even, err := session.New(cfg, session.WithLogger(golog.New().SetLevel("disable")))
			Expect(err).NotTo(HaveOccurred())
			Expect(even.Maze().Height()).To(Equal(17))
			Expect(even.Maze().Width()).To(Equal(17))
		})

		It("rejects an invalid config", func() {
			cfg.Height = 3
			_, err := session.New(cfg)
			Expect(err).To(MatchError(config.ErrInvalidConfig))
		})
	})

	Describe("Search", func() {
		It("animates a run to a found path", func() {
			ok, err := s.Search(search.BreadthFirst)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(s.Running()).To(BeTrue())

			f := drain(s)
			Expect(f.Status).To(Equal(search.Found))
			Expect(s.Running()).To(BeFalse())
			Expect(s.Display().Count(grid.PathFound)).To(BeNumerically(">", 0))
			Expect(s.Display().Count(grid.Start)).To(Equal(1))
			Expect(s.Display().Count(grid.End)).To(Equal(1))
			Expect(s.Maze().Count(grid.Visited)).To(BeZero())
		})

		It("ignores a second search while running", func() {
			ok, _ := s.Search(search.BreadthFirst)
			Expect(ok).To(BeTrue())
			s.Tick()
			s.Tick()
			before := s.Visited()

			ok, err := s.Search(search.DepthFirst)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())

			strategy, _ := s.Strategy()
			Expect(strategy).To(Equal(search.BreadthFirst))
			Expect(s.Visited()).To(Equal(before))
			Expect(drain(s).Status).To(Equal(search.Found))
		})

		It("clears stale marks when a new run starts", func() {
			s.Search(search.DepthFirst)
			drain(s)

			ok, _ := s.Search(search.BreadthFirst)
			Expect(ok).To(BeTrue())
			Expect(countMarks(s.Display())).To(BeZero())
		})

		It("records a report per finished run", func() {
			s.Search(search.DepthFirst)
			drain(s)

			Expect(finished).To(HaveLen(1))
			Expect(s.Last()).NotTo(BeNil())
			Expect(s.Last().Strategy).To(Equal("dfs"))
			Expect(s.Last().Status).To(Equal("found"))
			Expect(s.Last().Seed).To(Equal(int64(42)))
			Expect(s.Trace(0)).NotTo(BeEmpty())
		})

		It("keeps returning the final frame once done", func() {
			s.Search(search.BreadthFirst)
			drain(s)
			visited := s.Visited()

			f := s.Tick()
			Expect(f.Done).To(BeTrue())
			Expect(f.Status).To(Equal(search.Found))
			Expect(s.Visited()).To(Equal(visited))
			Expect(finished).To(HaveLen(1))
		})
	})

	Describe("Cancel", func() {
		It("stops the run with no further marks", func() {
			s.Search(search.BreadthFirst)
			s.Tick()
			s.Tick()
			s.Tick()

			Expect(s.Cancel()).To(BeTrue())
			Expect(s.Status()).To(Equal(search.Canceled))
			Expect(s.Running()).To(BeFalse())

			marks := countMarks(s.Display())
			f := s.Tick()
			Expect(f.Done).To(BeTrue())
			Expect(countMarks(s.Display())).To(Equal(marks))
			Expect(s.Display().Count(grid.PathFound)).To(BeZero())
			Expect(finished).To(HaveLen(1))
			Expect(finished[0].Status).To(Equal("canceled"))
		})

		It("reports false with nothing running", func() {
			Expect(s.Cancel()).To(BeFalse())
		})
	})

	Describe("Switch", func() {
		It("cancels the active run and starts the other strategy", func() {
			s.Search(search.BreadthFirst)
			s.Tick()

			ok, err := s.Switch(search.DepthFirst)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())

			strategy, _ := s.Strategy()
			Expect(strategy).To(Equal(search.DepthFirst))
			Expect(finished).To(HaveLen(1))
			Expect(finished[0].Status).To(Equal("canceled"))
			Expect(drain(s).Status).To(Equal(search.Found))
		})
	})

	Describe("Clear", func() {
		It("cancels and wipes marks", func() {
			s.Search(search.DepthFirst)
			for i := 0; i < 5; i++ {
				s.Tick()
			}
			s.Clear()

			Expect(s.Running()).To(BeFalse())
			Expect(s.Status()).To(Equal(search.Idle))
			Expect(countMarks(s.Display())).To(BeZero())
			Expect(s.Display().Equal(s.Maze())).To(BeTrue())
		})

		It("is idempotent", func() {
			s.Clear()
			first := s.Display().Clone()
			s.Clear()
			Expect(s.Display().Equal(first)).To(BeTrue())
		})
	})

	Describe("Refresh", func() {
		It("cancels the run and draws the next seed", func() {
			s.Search(search.BreadthFirst)
			s.Tick()

			Expect(s.Refresh()).To(Succeed())
			Expect(s.Seed()).To(Equal(int64(43)))
			Expect(s.Running()).To(BeFalse())
			Expect(s.Status()).To(Equal(search.Idle))
			Expect(countMarks(s.Display())).To(BeZero())
		})

		It("uses a custom seed source", func() {
			seeded, err := session.New(cfg,
				session.WithLogger(golog.New().SetLevel("disable")),
				session.WithSeeds(func() int64 { return 7 }),
			)
			Expect(err).NotTo(HaveOccurred())

			want, err := maze.New(maze.NewRandomShuffler(7)).Generate(11, 11)
			Expect(err).NotTo(HaveOccurred())
			Expect(seeded.Maze().Equal(want)).To(BeTrue())
		})
	})
})
