package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/todo-api/internal/dto"
	apierrors "github.com/yukikurage/todo-api/internal/errors"
	"github.com/yukikurage/todo-api/internal/repository"
	"github.com/yukikurage/todo-api/internal/testutil"
	"github.com/yukikurage/todo-api/internal/utils"
	"gorm.io/gorm"
)

type ServicesTestSuite struct {
	suite.Suite
	db    *gorm.DB
	ctx   context.Context
	auth  *AuthService
	users *UserService
	tasks *TaskService
}

func (suite *ServicesTestSuite) SetupTest() {
	suite.db = testutil.NewDB(suite.T())
	suite.ctx = context.Background()

	userRepo := repository.NewUserRepository(suite.db)
	suite.auth = NewAuthService(userRepo)
	suite.users = NewUserService(userRepo)
	suite.tasks = NewTaskService(repository.NewTaskRepository(suite.db))
}

func (suite *ServicesTestSuite) register(email string) (uint64, string) {
	user, key, err := suite.users.Register(suite.ctx, dto.RegisterUserForm{EmailAddress: email})
	suite.Require().NoError(err)
	return user.ID, key
}

func header(key string) http.Header {
	h := http.Header{}
	h.Set("X-Api-Key", key)
	return h
}

func (suite *ServicesTestSuite) TestRegister_KeyResolvesToSameUser() {
	id, key := suite.register("a@b.com")
	suite.Len(key, 30)

	got, err := suite.auth.Authenticate(suite.ctx, header(key))
	suite.Require().NoError(err)
	suite.Equal(id, got)

	user, err := suite.users.GetUser(suite.ctx, id)
	suite.Require().NoError(err)
	suite.Equal(utils.HashAPIKey(key), user.APIKeyHash)
	suite.NotEqual(key, user.APIKeyHash)
}

func (suite *ServicesTestSuite) TestRegister_InvalidEmail() {
	_, _, err := suite.users.Register(suite.ctx, dto.RegisterUserForm{EmailAddress: "nope"})

	var verr *apierrors.ValidationError
	suite.Require().True(errors.As(err, &verr))
	suite.Equal("email_address", verr.Errors[0].Field)
}

func (suite *ServicesTestSuite) TestGetUser_Missing() {
	_, err := suite.users.GetUser(suite.ctx, 404)
	suite.ErrorIs(err, ErrUserNotFound)
}

func (suite *ServicesTestSuite) TestAuthenticate_Errors() {
	suite.register("a@b.com")

	_, err := suite.auth.Authenticate(suite.ctx, http.Header{})
	suite.ErrorIs(err, ErrMissingAPIKey)

	_, err = suite.auth.Authenticate(suite.ctx, header("not-a-real-key"))
	suite.ErrorIs(err, ErrInvalidAPIKey)
}

func (suite *ServicesTestSuite) TestCreateThenGet() {
	userID, _ := suite.register("a@b.com")

	created, err := suite.tasks.CreateTask(suite.ctx, userID, dto.CreateTaskForm{Title: "t", Description: "d"})
	suite.Require().NoError(err)

	got, err := suite.tasks.GetTask(suite.ctx, userID, created.ID)
	suite.Require().NoError(err)
	suite.Equal("t", got.Title)
	suite.Equal("d", got.Description)
	suite.False(got.Completed)
}

func (suite *ServicesTestSuite) TestCreate_ValidationFailed() {
	userID, _ := suite.register("a@b.com")

	_, err := suite.tasks.CreateTask(suite.ctx, userID, dto.CreateTaskForm{Title: "t"})
	var verr *apierrors.ValidationError
	suite.Require().True(errors.As(err, &verr))
	suite.Require().Len(verr.Errors, 1)
	suite.Equal("description", verr.Errors[0].Field)
}

func (suite *ServicesTestSuite) TestUpdate_OtherUsersTask() {
	owner, _ := suite.register("owner@b.com")
	intruder, _ := suite.register("intruder@b.com")

	task, err := suite.tasks.CreateTask(suite.ctx, owner, dto.CreateTaskForm{Description: "mine"})
	suite.Require().NoError(err)

	err = suite.tasks.UpdateTask(suite.ctx, intruder, task.ID, dto.UpdateTaskForm{Description: "x", Completed: true})
	suite.ErrorIs(err, ErrTaskNotFound)

	_, err = suite.tasks.GetTask(suite.ctx, intruder, task.ID)
	suite.ErrorIs(err, ErrTaskNotFound)
}

func (suite *ServicesTestSuite) TestDeleteTwice() {
	userID, _ := suite.register("a@b.com")
	task, err := suite.tasks.CreateTask(suite.ctx, userID, dto.CreateTaskForm{Description: "d"})
	suite.Require().NoError(err)

	suite.NoError(suite.tasks.DeleteTask(suite.ctx, userID, task.ID))
	suite.ErrorIs(suite.tasks.DeleteTask(suite.ctx, userID, task.ID), ErrTaskNotFound)
}

func (suite *ServicesTestSuite) TestListTasks_CountIsOwnerScoped() {
	alice, _ := suite.register("alice@b.com")
	bob, _ := suite.register("bob@b.com")
	for i := 0; i < 3; i++ {
		_, err := suite.tasks.CreateTask(suite.ctx, alice, dto.CreateTaskForm{Description: "a"})
		suite.Require().NoError(err)
	}
	_, err := suite.tasks.CreateTask(suite.ctx, bob, dto.CreateTaskForm{Description: "b"})
	suite.Require().NoError(err)

	page, err := suite.tasks.ListTasks(suite.ctx, alice, utils.NewPaginationParams(0))
	suite.Require().NoError(err)
	suite.Equal(int64(3), page.TotalCount)
	suite.Len(page.Items, 3)
	suite.Equal(0, page.PageIndex)
	suite.Equal(10, page.PageSize)
}

func TestServicesTestSuite(t *testing.T) {
	suite.Run(t, new(ServicesTestSuite))
}
