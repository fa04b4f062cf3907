package service_test

import (
	"testing"

	"photostudio-backend/internal/auth"
	"photostudio-backend/internal/database/models"
	apperrors "photostudio-backend/internal/errors"
	"photostudio-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AssignmentServiceTestSuite struct {
	storeSuite
}

func memberIDs(list []service.AssignmentResponse) []uuid.UUID {
	ids := make([]uuid.UUID, len(list))
	for i, a := range list {
		ids[i] = a.TeamMemberID
	}
	return ids
}

func (suite *AssignmentServiceTestSuite) TestWholeEventAssignmentCoversEveryCeremony() {
	e1 := suite.createEvent(models.EventStatusUpcoming)
	c1 := suite.addCeremony(e1, "Ceremony")
	m1 := suite.createMember()
	m2 := suite.createMember()

	_, err := suite.assignments.Assign(suite.owner, e1.ID, &service.AssignRequest{TeamMemberID: m1.ID})
	suite.Require().NoError(err)
	_, err = suite.assignments.Assign(suite.owner, e1.ID, &service.AssignRequest{TeamMemberID: m2.ID, CeremonyID: &c1.ID})
	suite.Require().NoError(err)

	scoped, err := suite.assignments.ListForScope(suite.owner, e1.ID, &c1.ID)
	suite.Require().NoError(err)
	suite.ElementsMatch([]uuid.UUID{m1.ID, m2.ID}, memberIDs(scoped))

	c2 := suite.addCeremony(e1, "Reception")
	scoped, err = suite.assignments.ListForScope(suite.owner, e1.ID, &c2.ID)
	suite.Require().NoError(err)
	suite.Equal([]uuid.UUID{m1.ID}, memberIDs(scoped))
	suite.True(scoped[0].WholeEvent)

	all, err := suite.assignments.ListForScope(suite.owner, e1.ID, nil)
	suite.Require().NoError(err)
	suite.Len(all, 2)
}

func (suite *AssignmentServiceTestSuite) TestDuplicateAssignmentConflicts() {
	e1 := suite.createEvent(models.EventStatusUpcoming)
	c1 := suite.addCeremony(e1, "Ceremony")
	m1 := suite.createMember()

	req := &service.AssignRequest{TeamMemberID: m1.ID, CeremonyID: &c1.ID}
	_, err := suite.assignments.Assign(suite.owner, e1.ID, req)
	suite.Require().NoError(err)

	_, err = suite.assignments.Assign(suite.owner, e1.ID, req)
	suite.True(apperrors.IsConflict(err))
	suite.ErrorIs(err, apperrors.ErrAssignmentExists)

	// a whole-event assignment is a different scope
	_, err = suite.assignments.Assign(suite.owner, e1.ID, &service.AssignRequest{TeamMemberID: m1.ID})
	suite.Require().NoError(err)
	_, err = suite.assignments.Assign(suite.owner, e1.ID, &service.AssignRequest{TeamMemberID: m1.ID})
	suite.True(apperrors.IsConflict(err))
}

func (suite *AssignmentServiceTestSuite) TestAssignValidation() {
	e1 := suite.createEvent(models.EventStatusUpcoming)
	other := suite.createEvent(models.EventStatusUpcoming)
	foreignCeremony := suite.addCeremony(other, "Elsewhere")
	active := suite.createMember()
	inactive := suite.factories.TeamMember.Inactive(suite.studio.ID)
	suite.Require().NoError(suite.store.TeamMembers.Create(inactive))

	outsider := suite.factories.TeamMember.ForStudio(suite.createStudio("Rival").ID)
	suite.Require().NoError(suite.store.TeamMembers.Create(outsider))

	tests := []struct {
		name  string
		req   *service.AssignRequest
		check func(error) bool
		want  error
	}{
		{
			name:  "inactive member",
			req:   &service.AssignRequest{TeamMemberID: inactive.ID},
			check: apperrors.IsValidation,
			want:  apperrors.ErrInactiveTeamMember,
		},
		{
			name:  "ceremony of another event",
			req:   &service.AssignRequest{TeamMemberID: active.ID, CeremonyID: &foreignCeremony.ID},
			check: apperrors.IsValidation,
			want:  apperrors.ErrCeremonyEventMismatch,
		},
		{
			name:  "unknown member",
			req:   &service.AssignRequest{TeamMemberID: uuid.New()},
			check: apperrors.IsNotFound,
			want:  apperrors.ErrTeamMemberNotFound,
		},
		{
			name:  "member of another studio",
			req:   &service.AssignRequest{TeamMemberID: outsider.ID},
			check: apperrors.IsNotFound,
			want:  apperrors.ErrTeamMemberNotFound,
		},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.assignments.Assign(suite.owner, e1.ID, tt.req)
			suite.Require().Error(err)
			suite.True(tt.check(err), "unexpected error: %v", err)
			suite.ErrorIs(err, tt.want)
		})
	}

	count, err := suite.store.Assignments.Count()
	suite.Require().NoError(err)
	suite.Zero(count)
}

func (suite *AssignmentServiceTestSuite) TestAssignRequiresSchedulableEvent() {
	done := suite.createEvent(models.EventStatusCompleted)
	member := suite.createMember()

	_, err := suite.assignments.Assign(suite.owner, done.ID, &service.AssignRequest{TeamMemberID: member.ID})
	suite.ErrorIs(err, apperrors.ErrEventNotSchedulable)
}

func (suite *AssignmentServiceTestSuite) TestDeactivationKeepsAssignments() {
	event := suite.createEvent(models.EventStatusUpcoming)
	member := suite.createMember()
	_, err := suite.assignments.Assign(suite.owner, event.ID, &service.AssignRequest{TeamMemberID: member.ID})
	suite.Require().NoError(err)

	_, err = suite.members.UpdateTeamMember(suite.owner, member.ID, &service.UpdateTeamMemberRequest{IsActive: boolPtr(false)})
	suite.Require().NoError(err)

	list, err := suite.assignments.ListForMember(suite.owner, member.ID)
	suite.Require().NoError(err)
	suite.Len(list, 1)
}

func (suite *AssignmentServiceTestSuite) TestEffectiveRole() {
	event := suite.createEvent(models.EventStatusUpcoming)
	member := suite.createMember()

	override, err := suite.assignments.Assign(suite.owner, event.ID, &service.AssignRequest{TeamMemberID: member.ID, Role: strPtr("Second Shooter")})
	suite.Require().NoError(err)
	suite.Equal("Second Shooter", override.EffectiveRole)

	suite.Require().NoError(suite.assignments.Unassign(suite.owner, override.ID))

	plain, err := suite.assignments.Assign(suite.owner, event.ID, &service.AssignRequest{TeamMemberID: member.ID})
	suite.Require().NoError(err)
	suite.Nil(plain.Role)
	suite.Equal(member.Role, plain.EffectiveRole)
	suite.Equal(member.Name, plain.MemberName)
}

func (suite *AssignmentServiceTestSuite) TestUnassignIsIdempotent() {
	event := suite.createEvent(models.EventStatusUpcoming)
	member := suite.createMember()
	a, err := suite.assignments.Assign(suite.owner, event.ID, &service.AssignRequest{TeamMemberID: member.ID})
	suite.Require().NoError(err)

	suite.NoError(suite.assignments.Unassign(suite.owner, a.ID))
	suite.NoError(suite.assignments.Unassign(suite.owner, a.ID))
	suite.NoError(suite.assignments.Unassign(suite.owner, uuid.New()))
}

func (suite *AssignmentServiceTestSuite) TestTeamMembersManageOnlyThemselves() {
	event := suite.createEvent(models.EventStatusUpcoming)
	me := suite.createMember()
	colleague := suite.createMember()
	crew := auth.TeamMemberCaller(suite.studio.ID, me.ID)

	mine, err := suite.assignments.Assign(crew, event.ID, &service.AssignRequest{TeamMemberID: me.ID})
	suite.Require().NoError(err)

	_, err = suite.assignments.Assign(crew, event.ID, &service.AssignRequest{TeamMemberID: colleague.ID})
	suite.ErrorIs(err, apperrors.ErrNotOwnAssignment)

	theirs, err := suite.assignments.Assign(suite.owner, event.ID, &service.AssignRequest{TeamMemberID: colleague.ID})
	suite.Require().NoError(err)
	suite.ErrorIs(suite.assignments.Unassign(crew, theirs.ID), apperrors.ErrNotOwnAssignment)

	_, err = suite.assignments.ListForMember(crew, colleague.ID)
	suite.True(apperrors.IsAuthorization(err))

	suite.NoError(suite.assignments.Unassign(crew, mine.ID))
}

func TestAssignmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentServiceTestSuite))
}
