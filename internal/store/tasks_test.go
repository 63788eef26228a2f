package store

import "workboard/internal/models"

func (suite *StoreTestSuite) TestCreateTaskEntersFirstStage() {
	actor := suite.addUser("Ana", "ana@example.com")
	board := suite.createBoard(actor)

	task, err := suite.store.CreateTask(&actor, NewTask{Title: "Write docs"})
	suite.Require().NoError(err)

	suite.Equal(board.ID, task.BoardID)
	suite.Equal(board.Stages[0].ID, task.Status)
	suite.Equal(models.TaskTypeStandard, task.Type)
	suite.Equal(models.PriorityMedium, task.Priority)
	suite.False(task.IsFormComplete)
	suite.Empty(task.EditHistory)
	suite.Empty(task.HelpRequests)
	suite.Equal(actor.ID, task.CreatedBy)
}

func (suite *StoreTestSuite) TestCreateTaskUsesExplicitBoardWhenNothingSelected() {
	actor := suite.addUser("Ana", "ana@example.com")
	board := suite.createBoard(actor)
	suite.Require().NoError(suite.store.SelectBoard(""))

	task, err := suite.store.CreateTask(&actor, NewTask{Title: "Write docs", BoardID: board.ID})
	suite.Require().NoError(err)
	suite.Equal(board.ID, task.BoardID)
}

func (suite *StoreTestSuite) TestCreateTaskErrors() {
	actor := suite.addUser("Ana", "ana@example.com")

	_, err := suite.store.CreateTask(nil, NewTask{Title: "x"})
	suite.ErrorIs(err, ErrNoCurrentUser)

	_, err = suite.store.CreateTask(&actor, NewTask{})
	suite.ErrorIs(err, ErrTitleRequired)

	_, err = suite.store.CreateTask(&actor, NewTask{Title: "x"})
	suite.ErrorIs(err, ErrBoardNotFound)
}

func (suite *StoreTestSuite) TestUpdateTaskBatchesChangesIntoOneEntry() {
	actor := suite.addUser("Ana", "ana@example.com")
	suite.createBoard(actor)
	task := suite.createTask(actor, "Write docs")

	title := "Rewrite docs"
	priority := models.PriorityHigh
	updated, err := suite.store.UpdateTask(&actor, task.ID, TaskPatch{
		Title:    &title,
		Priority: &priority,
	})
	suite.Require().NoError(err)

	suite.Require().Len(updated.EditHistory, 1)
	entry := updated.EditHistory[0]
	suite.Equal(actor.ID, entry.UserID)
	suite.Equal(actor.Name, entry.UserName)
	suite.Require().Len(entry.Changes, 2)

	byField := map[string]models.FieldChange{}
	for _, change := range entry.Changes {
		byField[change.Field] = change
	}
	suite.Equal("Write docs", byField["title"].OldValue)
	suite.Equal("Rewrite docs", byField["title"].NewValue)
	suite.Equal("medium", byField["priority"].OldValue)
	suite.Equal("high", byField["priority"].NewValue)
}

func (suite *StoreTestSuite) TestUpdateTaskSkipsUnchangedFields() {
	actor := suite.addUser("Ana", "ana@example.com")
	suite.createBoard(actor)
	task := suite.createTask(actor, "Write docs")

	same := "Write docs"
	updated, err := suite.store.UpdateTask(&actor, task.ID, TaskPatch{Title: &same})
	suite.Require().NoError(err)
	suite.Empty(updated.EditHistory)
}

func (suite *StoreTestSuite) TestUpdateTaskDeepComparesSliceFields() {
	actor := suite.addUser("Ana", "ana@example.com")
	suite.createBoard(actor)
	task := suite.createTask(actor, "Write docs")

	tags := []string{"infra", "docs"}
	updated, err := suite.store.UpdateTask(&actor, task.ID, TaskPatch{Tags: &tags})
	suite.Require().NoError(err)
	suite.Len(updated.EditHistory, 1)

	// Equal-content replacement must not log a spurious change.
	equalTags := []string{"infra", "docs"}
	updated, err = suite.store.UpdateTask(&actor, task.ID, TaskPatch{Tags: &equalTags})
	suite.Require().NoError(err)
	suite.Len(updated.EditHistory, 1)
}

func (suite *StoreTestSuite) TestUpdateTaskValidatesBeforeApplying() {
	actor := suite.addUser("Ana", "ana@example.com")
	suite.createBoard(actor)
	task := suite.createTask(actor, "Write docs")

	title := "Changed"
	badStage := "not-a-stage"
	_, err := suite.store.UpdateTask(&actor, task.ID, TaskPatch{Title: &title, Status: &badStage})
	suite.ErrorIs(err, ErrStageNotFound)

	got, _ := suite.store.TaskByID(task.ID)
	suite.Equal("Write docs", got.Title)
	suite.Empty(got.EditHistory)
}

func (suite *StoreTestSuite) TestUpdateTaskRequiresActor() {
	_, err := suite.store.UpdateTask(nil, "any", TaskPatch{})
	suite.ErrorIs(err, ErrNoCurrentUser)
}

func (suite *StoreTestSuite) TestMoveTaskAlwaysLogsHistory() {
	actor := suite.addUser("Ana", "ana@example.com")
	board := suite.createBoard(actor)
	task := suite.createTask(actor, "Write docs")

	suite.Require().NoError(suite.store.MoveTaskToStage(&actor, task.ID, board.Stages[1].ID))
	// Moving to the stage the task is already in still logs an entry.
	suite.Require().NoError(suite.store.MoveTaskToStage(&actor, task.ID, board.Stages[1].ID))

	got, _ := suite.store.TaskByID(task.ID)
	suite.Equal(board.Stages[1].ID, got.Status)
	suite.Require().Len(got.EditHistory, 2)
	suite.Equal("status", got.EditHistory[0].Changes[0].Field)

	suite.ErrorIs(suite.store.MoveTaskToStage(&actor, task.ID, "nope"), ErrStageNotFound)
	suite.ErrorIs(suite.store.MoveTaskToStage(nil, task.ID, board.Stages[0].ID), ErrNoCurrentUser)
}

func (suite *StoreTestSuite) TestToggleFormCompleteLogsFlip() {
	actor := suite.addUser("Ana", "ana@example.com")
	suite.createBoard(actor)
	task := suite.createTask(actor, "Collect data")

	suite.Require().NoError(suite.store.ToggleFormComplete(&actor, task.ID))
	got, _ := suite.store.TaskByID(task.ID)
	suite.True(got.IsFormComplete)
	suite.Require().Len(got.EditHistory, 1)
	change := got.EditHistory[0].Changes[0]
	suite.Equal("isFormComplete", change.Field)
	suite.Equal(false, change.OldValue)
	suite.Equal(true, change.NewValue)

	// Reopenable: a second toggle flips it back.
	suite.Require().NoError(suite.store.ToggleFormComplete(&actor, task.ID))
	got, _ = suite.store.TaskByID(task.ID)
	suite.False(got.IsFormComplete)
	suite.Len(got.EditHistory, 2)
}

func (suite *StoreTestSuite) TestDeleteTaskClearsSelection() {
	actor := suite.addUser("Ana", "ana@example.com")
	suite.createBoard(actor)
	task := suite.createTask(actor, "Write docs")
	suite.Require().NoError(suite.store.SelectTask(task.ID))

	suite.Require().NoError(suite.store.DeleteTask(task.ID))
	suite.Equal("", suite.store.SelectedTaskID())
	suite.ErrorIs(suite.store.DeleteTask(task.ID), ErrTaskNotFound)
}
