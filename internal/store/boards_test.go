package store

import (
	"workboard/internal/constants"
	"workboard/internal/models"
)

func (suite *StoreTestSuite) TestCreateBoardDefaultsAndSelection() {
	actor := suite.addUser("Ana", "ana@example.com")

	board, err := suite.store.CreateBoard(&actor, "Release", "launch work", nil)
	suite.Require().NoError(err)

	suite.Require().Len(board.Stages, 4)
	suite.Equal("To Do", board.Stages[0].Name)
	suite.Equal("Done", board.Stages[3].Name)
	for i, stage := range board.Stages {
		suite.Equal(i, stage.Order)
	}
	suite.Equal([]models.TeamMember{{UserID: actor.ID, JoinedAt: suite.now}}, board.TeamMembers)
	suite.Equal(board.ID, suite.store.SelectedBoardID())
}

func (suite *StoreTestSuite) TestCreateBoardRequiresActor() {
	_, err := suite.store.CreateBoard(nil, "Release", "", nil)
	suite.ErrorIs(err, ErrNoCurrentUser)
}

func (suite *StoreTestSuite) TestAddTeamMemberIsIdempotent() {
	actor := suite.addUser("Ana", "ana@example.com")
	other := suite.addUser("Ben", "ben@example.com")
	board := suite.createBoard(actor)

	suite.Require().NoError(suite.store.AddTeamMember(board.ID, other.ID))
	suite.Require().NoError(suite.store.AddTeamMember(board.ID, other.ID))

	got, _ := suite.store.BoardByID(board.ID)
	suite.Len(got.TeamMembers, 2)

	suite.ErrorIs(suite.store.AddTeamMember(board.ID, "nope"), ErrUserNotFound)
	suite.ErrorIs(suite.store.AddTeamMember("nope", other.ID), ErrBoardNotFound)
}

func (suite *StoreTestSuite) TestAddBoardStageAppendsWithNextOrder() {
	actor := suite.addUser("Ana", "ana@example.com")
	board := suite.createBoard(actor)

	suite.Require().NoError(suite.store.AddBoardStage(board.ID, "Blocked", "bg-orange-100 text-orange-700"))

	got, _ := suite.store.BoardByID(board.ID)
	suite.Require().Len(got.Stages, 5)
	suite.Equal("Blocked", got.Stages[4].Name)
	suite.Equal(4, got.Stages[4].Order)
}

func (suite *StoreTestSuite) TestUpdateBoardStagesReplacesWholesale() {
	actor := suite.addUser("Ana", "ana@example.com")
	board := suite.createBoard(actor)

	reversed := make([]models.BoardStage, len(board.Stages))
	for i, stage := range board.Stages {
		reversed[len(board.Stages)-1-i] = stage
		reversed[len(board.Stages)-1-i].Order = len(board.Stages) - 1 - i
	}
	suite.Require().NoError(suite.store.UpdateBoardStages(board.ID, reversed))

	got, _ := suite.store.BoardByID(board.ID)
	suite.Equal("Done", got.Stages[0].Name)
}

func (suite *StoreTestSuite) TestRemoveBoardStageReassignsTasksAndReindexes() {
	actor := suite.addUser("Ana", "ana@example.com")
	board := suite.createBoard(actor,
		StageInput{Name: "S1"}, StageInput{Name: "S2"}, StageInput{Name: "S3"})

	task := suite.createTask(actor, "Write docs")
	suite.Require().NoError(suite.store.MoveTaskToStage(&actor, task.ID, board.Stages[1].ID))

	suite.Require().NoError(suite.store.RemoveBoardStage(board.ID, board.Stages[1].ID))

	got, _ := suite.store.BoardByID(board.ID)
	suite.Require().Len(got.Stages, 2)
	suite.Equal("S1", got.Stages[0].Name)
	suite.Equal("S3", got.Stages[1].Name)
	suite.Equal([]int{0, 1}, []int{got.Stages[0].Order, got.Stages[1].Order})

	moved, _ := suite.store.TaskByID(task.ID)
	suite.Equal(board.Stages[0].ID, moved.Status)
}

func (suite *StoreTestSuite) TestRemoveFirstStageReassignsToNewFirst() {
	actor := suite.addUser("Ana", "ana@example.com")
	board := suite.createBoard(actor,
		StageInput{Name: "S1"}, StageInput{Name: "S2"}, StageInput{Name: "S3"})
	task := suite.createTask(actor, "Write docs")

	suite.Require().NoError(suite.store.RemoveBoardStage(board.ID, board.Stages[0].ID))

	// The task sat in the removed first stage; it must land in the stage
	// that is first after the removal, not keep a dangling status.
	moved, _ := suite.store.TaskByID(task.ID)
	suite.Equal(board.Stages[1].ID, moved.Status)
}

func (suite *StoreTestSuite) TestRemoveBoardStageKeepsMinimumOfTwo() {
	actor := suite.addUser("Ana", "ana@example.com")
	board := suite.createBoard(actor, StageInput{Name: "S1"}, StageInput{Name: "S2"})

	err := suite.store.RemoveBoardStage(board.ID, board.Stages[0].ID)
	suite.ErrorIs(err, ErrMinimumStages)
}

func (suite *StoreTestSuite) TestDeleteBoardCascades() {
	actor := suite.addUser("Ana", "ana@example.com")
	board := suite.createBoard(actor)
	t1 := suite.createTask(actor, "T1")
	t2 := suite.createTask(actor, "T2")
	suite.Require().NoError(suite.store.SelectTask(t1.ID))

	suite.Require().NoError(suite.store.DeleteBoard(board.ID))

	suite.Empty(suite.store.Tasks())
	_, found := suite.store.TaskByID(t1.ID)
	suite.False(found)
	_, found = suite.store.TaskByID(t2.ID)
	suite.False(found)
	suite.Equal("", suite.store.SelectedBoardID())
	suite.Equal("", suite.store.SelectedTaskID())

	suite.ErrorIs(suite.store.DeleteBoard(board.ID), ErrBoardNotFound)
}

func (suite *StoreTestSuite) TestAssigneeFilterLastWriteWins() {
	actor := suite.addUser("Ana", "ana@example.com")
	board := suite.createBoard(actor)

	suite.Equal(constants.AssigneeFilterAll, suite.store.AssigneeFilter(board.ID))

	suite.Require().NoError(suite.store.SetAssigneeFilter(board.ID, constants.AssigneeFilterUnassigned))
	suite.Require().NoError(suite.store.SetAssigneeFilter(board.ID, actor.ID))
	suite.Equal(actor.ID, suite.store.AssigneeFilter(board.ID))

	suite.ErrorIs(suite.store.SetAssigneeFilter("nope", "all"), ErrBoardNotFound)
}
