package service_test

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"launchloom.app/studio/common/id"
	"launchloom.app/studio/internal/model"
	"launchloom.app/studio/internal/queue"
	"launchloom.app/studio/internal/service"
	"launchloom.app/studio/internal/store"
)

var _ = Describe("RunService", func() {
	var (
		ctx       context.Context
		backend   *memoryBackend
		workspace *model.Workspace
		svc       service.RunService
	)

	BeforeEach(func() {
		ctx = context.Background()
		Expect(id.Init(1)).To(Succeed())
		backend = newMemoryBackend()

		var err error
		workspace, err = service.NewWorkspaceService(backend.workStore, backend.memberStore, backend.runStore, backend.txRunner).
			Create(ctx, service.CreateWorkspaceInput{Name: "Acme"})
		Expect(err).NotTo(HaveOccurred())

		backend.runStore.getByIdentifierFn = func(_ context.Context, ident, runID string) (*model.WorkspaceRun, error) {
			r, ok := backend.runs[runID]
			if !ok {
				return nil, store.ErrNotFound
			}
			ws := backend.workspaces[r.WorkspaceID]
			if ws == nil || (ws.PublicID != ident && ws.Slug != ident) {
				return nil, store.ErrNotFound
			}
			cp := *r
			return &cp, nil
		}
		backend.runStore.updateResultsFn = func(_ context.Context, run *model.WorkspaceRun) error {
			cp := *run
			backend.runs[run.RunID] = &cp
			return nil
		}

		svc = service.NewRunService(backend.workStore, backend.runStore, nil)
	})

	Describe("Create", func() {
		It("records a run with defaults", func() {
			run, err := svc.Create(ctx, workspace.Slug, service.CreateRunInput{
				RunID:     "run-1",
				IdeaTitle: "Idea",
				IdeaSlug:  "idea",
				IdeaText:  "An idea",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(run.ID).NotTo(BeZero())
			Expect(run.WorkspaceID).To(Equal(workspace.ID))
			Expect(run.ComplianceStatus).To(Equal(model.ComplianceStatusPass))
			Expect(run.StageMetrics).NotTo(BeNil())
			Expect(run.StageMetrics).To(BeEmpty())
			Expect(run.Telemetry).To(BeEmpty())
		})

		It("rounds scores to two places", func() {
			score := decimal.RequireFromString("87.456")
			cost := decimal.RequireFromString("1.005")

			run, err := svc.Create(ctx, workspace.PublicID, service.CreateRunInput{
				RunID:           "run-2",
				IdeaTitle:       "Idea",
				IdeaSlug:        "idea",
				IdeaText:        "An idea",
				EvaluationScore: &score,
				TotalCost:       &cost,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(run.EvaluationScore.String()).To(Equal("87.46"))
			Expect(run.TotalCost.String()).To(Equal("1.01"))
			Expect(run.OverallQuality).To(BeNil())
		})

		It("rejects a run id that already exists in any workspace", func() {
			other, err := service.NewWorkspaceService(backend.workStore, backend.memberStore, backend.runStore, backend.txRunner).
				Create(ctx, service.CreateWorkspaceInput{Name: "Beta"})
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.Create(ctx, workspace.Slug, service.CreateRunInput{RunID: "run-x", IdeaTitle: "A", IdeaSlug: "a", IdeaText: "a"})
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.Create(ctx, other.Slug, service.CreateRunInput{RunID: "run-x", IdeaTitle: "B", IdeaSlug: "b", IdeaText: "b"})

			Expect(err).To(MatchError(service.ErrRunConflict))
			Expect(backend.runs).To(HaveLen(1))
		})

		DescribeTable("rejects values the numeric columns cannot hold",
			func(input service.CreateRunInput) {
				input.RunID, input.IdeaTitle, input.IdeaSlug, input.IdeaText = "run-big", "Idea", "idea", "An idea"

				_, err := svc.Create(ctx, workspace.Slug, input)

				Expect(err).To(MatchError(service.ErrValueOutOfRange))
				Expect(backend.runStore.createCalls).To(Equal(0))
			},
			Entry("score of 1000", service.CreateRunInput{EvaluationScore: decimalPtr("1000")}),
			Entry("score rounding up to 1000", service.CreateRunInput{EvaluationScore: decimalPtr("999.995")}),
			Entry("negative quality of -1000", service.CreateRunInput{OverallQuality: decimalPtr("-1000")}),
			Entry("cost of 1e10", service.CreateRunInput{TotalCost: decimalPtr("10000000000")}),
		)

		It("accepts values at the edge of the numeric columns", func() {
			run, err := svc.Create(ctx, workspace.Slug, service.CreateRunInput{
				RunID:           "run-edge",
				IdeaTitle:       "Idea",
				IdeaSlug:        "idea",
				IdeaText:        "An idea",
				EvaluationScore: decimalPtr("999.994"),
				TotalCost:       decimalPtr("9999999999.99"),
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(run.EvaluationScore.String()).To(Equal("999.99"))
		})

		It("returns ErrWorkspaceNotFound for an unknown workspace", func() {
			_, err := svc.Create(ctx, "missing", service.CreateRunInput{RunID: "run-1"})

			Expect(err).To(MatchError(service.ErrWorkspaceNotFound))
			Expect(backend.runStore.createCalls).To(Equal(0))
		})
	})

	Describe("Get", func() {
		BeforeEach(func() {
			_, err := svc.Create(ctx, workspace.Slug, service.CreateRunInput{RunID: "run-1", IdeaTitle: "A", IdeaSlug: "a", IdeaText: "a"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("finds the run by workspace public id or slug", func() {
			byID, err := svc.Get(ctx, workspace.PublicID, "run-1")
			Expect(err).NotTo(HaveOccurred())
			bySlug, err := svc.Get(ctx, workspace.Slug, "run-1")
			Expect(err).NotTo(HaveOccurred())

			Expect(byID.ID).To(Equal(bySlug.ID))
		})

		It("returns ErrRunNotFound when the workspace does not own the run", func() {
			_, err := svc.Get(ctx, "other", "run-1")

			Expect(err).To(MatchError(service.ErrRunNotFound))
		})
	})

	Describe("List", func() {
		It("reports the total independently of the page", func() {
			for _, runID := range []string{"r1", "r2", "r3", "r4"} {
				_, err := svc.Create(ctx, workspace.Slug, service.CreateRunInput{RunID: runID, IdeaTitle: "A", IdeaSlug: "a", IdeaText: "a"})
				Expect(err).NotTo(HaveOccurred())
			}

			items, total, err := svc.List(ctx, workspace.Slug, 2, 0)

			Expect(err).NotTo(HaveOccurred())
			Expect(items).To(HaveLen(2))
			Expect(total).To(Equal(int64(4)))
		})
	})

	Describe("result mutators", func() {
		BeforeEach(func() {
			_, err := svc.Create(ctx, workspace.Slug, service.CreateRunInput{RunID: "run-1", IdeaTitle: "A", IdeaSlug: "a", IdeaText: "a"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("replaces stage metrics wholesale", func() {
			_, err := svc.RecordStageMetrics(ctx, workspace.Slug, "run-1", []model.StageMetric{{"stage": "a"}, {"stage": "b"}})
			Expect(err).NotTo(HaveOccurred())

			run, err := svc.RecordStageMetrics(ctx, workspace.Slug, "run-1", []model.StageMetric{{"stage": "c"}})

			Expect(err).NotTo(HaveOccurred())
			Expect(run.StageMetrics).To(HaveLen(1))
			Expect(backend.runs["run-1"].StageMetrics).To(HaveLen(1))
		})

		It("keeps the existing score when only a report is given", func() {
			score := decimal.NewFromInt(80)
			_, err := svc.SetEvaluation(ctx, workspace.Slug, "run-1", &score, nil)
			Expect(err).NotTo(HaveOccurred())

			run, err := svc.SetEvaluation(ctx, workspace.Slug, "run-1", nil, map[string]any{"summary": "ok"})

			Expect(err).NotTo(HaveOccurred())
			Expect(run.EvaluationScore.Equal(score)).To(BeTrue())
			Expect(run.EvaluationReport).To(HaveKeyWithValue("summary", "ok"))
		})

		It("rejects an evaluation score the column cannot hold", func() {
			_, err := svc.SetEvaluation(ctx, workspace.Slug, "run-1", decimalPtr("1000"), nil)

			Expect(err).To(MatchError(service.ErrValueOutOfRange))
			Expect(backend.runStore.updateCalls).To(Equal(0))
			Expect(backend.runs["run-1"].EvaluationScore).To(BeNil())
		})

		It("always sets the compliance status", func() {
			_, err := svc.SetCompliance(ctx, workspace.Slug, "run-1", model.ComplianceStatusFail, map[string]any{"issues": 2})
			Expect(err).NotTo(HaveOccurred())

			run, err := svc.SetCompliance(ctx, workspace.Slug, "run-1", model.ComplianceStatusReview, nil)

			Expect(err).NotTo(HaveOccurred())
			Expect(run.ComplianceStatus).To(Equal(model.ComplianceStatusReview))
			Expect(run.ComplianceReport).To(HaveKeyWithValue("issues", 2))
		})

		It("returns ErrRunNotFound for an unknown run", func() {
			_, err := svc.SetCompliance(ctx, workspace.Slug, "nope", model.ComplianceStatusFail, nil)

			Expect(err).To(MatchError(service.ErrRunNotFound))
			Expect(backend.runStore.updateCalls).To(Equal(0))
		})
	})

	Describe("run events", func() {
		var producer *mockProducer

		BeforeEach(func() {
			producer = &mockProducer{}
			svc = service.NewRunService(backend.workStore, backend.runStore, producer)
		})

		It("publishes one event per change", func() {
			_, err := svc.Create(ctx, workspace.Slug, service.CreateRunInput{RunID: "run-1", IdeaTitle: "A", IdeaSlug: "a", IdeaText: "a"})
			Expect(err).NotTo(HaveOccurred())
			_, err = svc.SetCompliance(ctx, workspace.Slug, "run-1", model.ComplianceStatusReview, nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(producer.events).To(HaveLen(2))
			created := producer.events[0]
			Expect(created.Type).To(Equal(queue.EventTypeRunCreated))
			Expect(created.WorkspaceID).To(Equal(workspace.ID))
			Expect(created.WorkspacePublicID).To(Equal(workspace.PublicID))
			Expect(created.RunID).To(Equal("run-1"))
			Expect(created.OccurredAt).NotTo(BeZero())
			Expect(producer.events[1].Type).To(Equal(queue.EventTypeRunComplianceSet))
			Expect(producer.events[1].ComplianceStatus).To(Equal("review"))
		})

		It("carries the workspace public id on result updates", func() {
			_, err := svc.Create(ctx, workspace.PublicID, service.CreateRunInput{RunID: "run-1", IdeaTitle: "A", IdeaSlug: "a", IdeaText: "a"})
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.RecordStageMetrics(ctx, workspace.Slug, "run-1", []model.StageMetric{{"stage": "a"}})
			Expect(err).NotTo(HaveOccurred())
			_, err = svc.SetEvaluation(ctx, workspace.PublicID, "run-1", decimalPtr("90"), nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(producer.events).To(HaveLen(3))
			for _, event := range producer.events {
				Expect(event.WorkspacePublicID).To(Equal(workspace.PublicID))
				Expect(event.WorkspaceID).To(Equal(workspace.ID))
			}
			Expect(producer.events[1].Type).To(Equal(queue.EventTypeRunStageMetrics))
			Expect(producer.events[2].Type).To(Equal(queue.EventTypeRunEvaluationSet))
		})

		It("does not publish for an unknown workspace", func() {
			_, err := svc.SetCompliance(ctx, "missing", "run-1", model.ComplianceStatusFail, nil)

			Expect(err).To(MatchError(service.ErrWorkspaceNotFound))
			Expect(producer.events).To(BeEmpty())
		})

		It("does not publish when the write fails", func() {
			_, err := svc.SetCompliance(ctx, workspace.Slug, "nope", model.ComplianceStatusFail, nil)

			Expect(err).To(MatchError(service.ErrRunNotFound))
			Expect(producer.events).To(BeEmpty())
		})

		It("keeps the write when publishing fails", func() {
			producer.publishFn = func(_ context.Context, _ queue.RunEvent) error {
				return errors.New("stream unavailable")
			}

			run, err := svc.Create(ctx, workspace.Slug, service.CreateRunInput{RunID: "run-1", IdeaTitle: "A", IdeaSlug: "a", IdeaText: "a"})

			Expect(err).NotTo(HaveOccurred())
			Expect(run.RunID).To(Equal("run-1"))
			Expect(backend.runs).To(HaveKey("run-1"))
			Expect(producer.events).To(HaveLen(1))
		})
	})
})

var _ = Describe("Acme Corp scenario", func() {
	It("creates, invites, promotes and records a run end to end", func() {
		ctx := context.Background()
		Expect(id.Init(1)).To(Succeed())
		backend := newMemoryBackend()
		workspaces := service.NewWorkspaceService(backend.workStore, backend.memberStore, backend.runStore, backend.txRunner)
		members := service.NewMemberService(backend.workStore, backend.memberStore, &mockUserStore{})
		runs := service.NewRunService(backend.workStore, backend.runStore, nil)

		ws, err := workspaces.Create(ctx, service.CreateWorkspaceInput{
			Name: "Acme Corp",
			Members: []service.MemberInput{
				{Email: "founder@acme.io", Role: model.WorkspaceRoleOwner},
				{Email: "analyst@acme.io", Role: model.WorkspaceRoleViewer},
			},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(ws.Slug).To(Equal("acme-corp"))

		promoted, err := members.Add(ctx, ws.Slug, service.AddMemberInput{Email: "analyst@acme.io", Role: model.WorkspaceRoleEditor})
		Expect(err).NotTo(HaveOccurred())
		Expect(promoted.Status).To(Equal(model.MembershipStatusActive))

		score := decimal.RequireFromString("91.5")
		_, err = runs.Create(ctx, ws.PublicID, service.CreateRunInput{
			RunID:           "acme-run-1",
			IdeaTitle:       "Rocket Delivery",
			IdeaSlug:        "rocket-delivery",
			IdeaText:        "Deliver parcels by rocket",
			EvaluationScore: &score,
		})
		Expect(err).NotTo(HaveOccurred())

		loaded, err := workspaces.Get(ctx, "acme-corp", service.WorkspaceLoad{Members: true, RunLimit: 10})
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded.PublicID).To(Equal(ws.PublicID))
		Expect(loaded.Members).To(HaveLen(2))
		for _, m := range loaded.Members {
			Expect(m.Status).To(Equal(model.MembershipStatusActive))
		}
		Expect(loaded.Runs).To(HaveLen(1))
		Expect(loaded.Runs[0].EvaluationScore.String()).To(Equal("91.5"))

		_, err = runs.Create(ctx, ws.Slug, service.CreateRunInput{RunID: "acme-run-1", IdeaTitle: "Again", IdeaSlug: "again", IdeaText: "again"})
		Expect(err).To(MatchError(service.ErrRunConflict))
	})

	It("keeps a rejected run out of the second workspace", func() {
		ctx := context.Background()
		Expect(id.Init(1)).To(Succeed())
		backend := newMemoryBackend()
		workspaces := service.NewWorkspaceService(backend.workStore, backend.memberStore, backend.runStore, backend.txRunner)
		runs := service.NewRunService(backend.workStore, backend.runStore, nil)

		first, err := workspaces.Create(ctx, service.CreateWorkspaceInput{Name: "Acme Corp"})
		Expect(err).NotTo(HaveOccurred())
		Expect(first.Slug).To(Equal("acme-corp"))
		Expect(first.Members).To(BeEmpty())
		Expect(first.Runs).To(BeEmpty())

		second, err := workspaces.Create(ctx, service.CreateWorkspaceInput{Name: "Acme Corp"})
		Expect(err).NotTo(HaveOccurred())
		Expect(second.Slug).To(Equal("acme-corp-2"))
		Expect(second.PublicID).NotTo(Equal(first.PublicID))

		_, err = runs.Create(ctx, first.PublicID, service.CreateRunInput{RunID: "r1", IdeaTitle: "T", IdeaSlug: "t", IdeaText: "..."})
		Expect(err).NotTo(HaveOccurred())

		_, err = runs.Create(ctx, second.PublicID, service.CreateRunInput{RunID: "r1", IdeaTitle: "T", IdeaSlug: "t", IdeaText: "..."})
		Expect(err).To(MatchError(service.ErrRunConflict))

		items, total, err := runs.List(ctx, second.Slug, 50, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(items).To(BeEmpty())
		Expect(total).To(BeZero())
	})
})

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
