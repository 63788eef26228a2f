package store

import "workboard/internal/models"

func (suite *StoreTestSuite) TestCreateHelpRequestStartsPending() {
	actor := suite.addUser("Ana", "ana@example.com")
	suite.createBoard(actor)
	task := suite.createTask(actor, "Collect data")

	request, err := suite.store.CreateHelpRequest(&actor, task.ID, "stuck on field 3")
	suite.Require().NoError(err)

	suite.Equal(models.HelpRequestPending, request.Status)
	suite.Equal(task.ID, request.TaskID)
	suite.Equal(actor.ID, request.RequestedBy)

	// Help requests are tracked independently of the edit history log.
	got, _ := suite.store.TaskByID(task.ID)
	suite.Empty(got.EditHistory)
	suite.Len(got.HelpRequests, 1)
}

func (suite *StoreTestSuite) TestHelpRequestFullLifecycle() {
	actor := suite.addUser("Ana", "ana@example.com")
	overseer := suite.addUser("Ben", "ben@example.com")
	suite.createBoard(actor)
	task := suite.createTask(actor, "Collect data")
	request, err := suite.store.CreateHelpRequest(&actor, task.ID, "stuck")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.store.AcknowledgeHelpRequest(task.ID, request.ID))
	got, _ := suite.store.TaskByID(task.ID)
	suite.Equal(models.HelpRequestAcknowledged, got.HelpRequests[0].Status)

	suite.Require().NoError(suite.store.ResolveHelpRequest(&overseer, task.ID, request.ID, "use the dropdown"))
	got, _ = suite.store.TaskByID(task.ID)
	resolved := got.HelpRequests[0]
	suite.Equal(models.HelpRequestResolved, resolved.Status)
	suite.Equal(overseer.ID, resolved.ResolvedBy)
	suite.Equal("use the dropdown", resolved.Response)
	suite.Require().NotNil(resolved.ResolvedAt)
	suite.Equal(suite.now, *resolved.ResolvedAt)
}

func (suite *StoreTestSuite) TestHelpRequestCanSkipAcknowledgement() {
	actor := suite.addUser("Ana", "ana@example.com")
	suite.createBoard(actor)
	task := suite.createTask(actor, "Collect data")
	request, err := suite.store.CreateHelpRequest(&actor, task.ID, "stuck")
	suite.Require().NoError(err)

	// pending -> resolved directly is allowed.
	suite.Require().NoError(suite.store.ResolveHelpRequest(&actor, task.ID, request.ID, "done"))
	got, _ := suite.store.TaskByID(task.ID)
	suite.Equal(models.HelpRequestResolved, got.HelpRequests[0].Status)
}

func (suite *StoreTestSuite) TestResolvedIsTerminal() {
	actor := suite.addUser("Ana", "ana@example.com")
	suite.createBoard(actor)
	task := suite.createTask(actor, "Collect data")
	request, err := suite.store.CreateHelpRequest(&actor, task.ID, "stuck")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.store.ResolveHelpRequest(&actor, task.ID, request.ID, "done"))

	suite.ErrorIs(suite.store.AcknowledgeHelpRequest(task.ID, request.ID), ErrHelpRequestResolved)
	suite.ErrorIs(suite.store.ResolveHelpRequest(&actor, task.ID, request.ID, "again"), ErrHelpRequestResolved)
}

func (suite *StoreTestSuite) TestHelpRequestErrors() {
	actor := suite.addUser("Ana", "ana@example.com")
	suite.createBoard(actor)
	task := suite.createTask(actor, "Collect data")

	_, err := suite.store.CreateHelpRequest(nil, task.ID, "stuck")
	suite.ErrorIs(err, ErrNoCurrentUser)

	_, err = suite.store.CreateHelpRequest(&actor, task.ID, "")
	suite.ErrorIs(err, ErrMessageRequired)

	_, err = suite.store.CreateHelpRequest(&actor, "nope", "stuck")
	suite.ErrorIs(err, ErrTaskNotFound)

	suite.ErrorIs(suite.store.AcknowledgeHelpRequest(task.ID, "nope"), ErrHelpRequestNotFound)
	suite.ErrorIs(suite.store.ResolveHelpRequest(&actor, task.ID, "nope", "r"), ErrHelpRequestNotFound)
}
