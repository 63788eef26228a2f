package store

import "workboard/internal/models"

func (suite *StoreTestSuite) TestSaveDraftLeavesCommittedDataUntouched() {
	actor := suite.addUser("Ana", "ana@example.com")
	suite.createBoard(actor)
	task := suite.createTask(actor, "Collect data")

	suite.Require().NoError(suite.store.SaveDraftData(task.ID, models.FieldValues{"f1": "x"}))

	got, _ := suite.store.TaskByID(task.ID)
	suite.Nil(got.DataCollectionData)
	suite.Equal(models.FieldValues{"f1": "x"}, got.DraftData)
	suite.Empty(got.EditHistory)
}

func (suite *StoreTestSuite) TestSaveDraftMergesPartialData() {
	actor := suite.addUser("Ana", "ana@example.com")
	suite.createBoard(actor)
	task := suite.createTask(actor, "Collect data")

	suite.Require().NoError(suite.store.SaveDraftData(task.ID, models.FieldValues{"f1": "x"}))
	suite.Require().NoError(suite.store.SaveDraftData(task.ID, models.FieldValues{"f2": float64(7)}))
	suite.Require().NoError(suite.store.SaveDraftData(task.ID, models.FieldValues{"f1": "y"}))

	got, _ := suite.store.TaskByID(task.ID)
	suite.Equal(models.FieldValues{"f1": "y", "f2": float64(7)}, got.DraftData)
}

func (suite *StoreTestSuite) TestDiscardDraftRestoresCleanState() {
	actor := suite.addUser("Ana", "ana@example.com")
	suite.createBoard(actor)
	task := suite.createTask(actor, "Collect data")

	suite.Require().NoError(suite.store.SaveDraftData(task.ID, models.FieldValues{"f1": "x"}))
	suite.Require().NoError(suite.store.DiscardDraftData(task.ID))

	got, _ := suite.store.TaskByID(task.ID)
	suite.Nil(got.DraftData)
	suite.Nil(got.DataCollectionData)
	suite.Empty(got.EditHistory)
}

func (suite *StoreTestSuite) TestCommitDraftMovesDataAndLogsOneEntry() {
	actor := suite.addUser("Ana", "ana@example.com")
	suite.createBoard(actor)
	task := suite.createTask(actor, "Collect data")

	suite.Require().NoError(suite.store.SaveDraftData(task.ID, models.FieldValues{"f1": "x"}))
	suite.Require().NoError(suite.store.CommitDraftData(&actor, task.ID))

	got, _ := suite.store.TaskByID(task.ID)
	suite.Equal(models.FieldValues{"f1": "x"}, got.DataCollectionData)
	suite.Nil(got.DraftData)

	suite.Require().Len(got.EditHistory, 1)
	entry := got.EditHistory[0]
	suite.Require().Len(entry.Changes, 1)
	suite.Equal("dataCollectionData.f1", entry.Changes[0].Field)
	suite.Nil(entry.Changes[0].OldValue)
	suite.Equal("x", entry.Changes[0].NewValue)
}

func (suite *StoreTestSuite) TestCommitDraftRecordsPreviousCommittedValue() {
	actor := suite.addUser("Ana", "ana@example.com")
	suite.createBoard(actor)
	task := suite.createTask(actor, "Collect data")

	suite.Require().NoError(suite.store.SaveDraftData(task.ID, models.FieldValues{"f1": "x"}))
	suite.Require().NoError(suite.store.CommitDraftData(&actor, task.ID))
	suite.Require().NoError(suite.store.SaveDraftData(task.ID, models.FieldValues{"f1": "y"}))
	suite.Require().NoError(suite.store.CommitDraftData(&actor, task.ID))

	got, _ := suite.store.TaskByID(task.ID)
	suite.Equal(models.FieldValues{"f1": "y"}, got.DataCollectionData)
	suite.Require().Len(got.EditHistory, 2)
	suite.Equal("x", got.EditHistory[1].Changes[0].OldValue)
	suite.Equal("y", got.EditHistory[1].Changes[0].NewValue)
}

func (suite *StoreTestSuite) TestCommitWithoutDraftIsNoOp() {
	actor := suite.addUser("Ana", "ana@example.com")
	suite.createBoard(actor)
	task := suite.createTask(actor, "Collect data")
	mutations := len(suite.persisted)

	suite.Require().NoError(suite.store.CommitDraftData(&actor, task.ID))

	got, _ := suite.store.TaskByID(task.ID)
	suite.Empty(got.EditHistory)
	suite.Len(suite.persisted, mutations)
}

func (suite *StoreTestSuite) TestCommitDraftRequiresActor() {
	suite.ErrorIs(suite.store.CommitDraftData(nil, "any"), ErrNoCurrentUser)
}
