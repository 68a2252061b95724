package controllers

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/meCodeKo/siverek-depo/models"
	"github.com/meCodeKo/siverek-depo/permissions"
	"github.com/meCodeKo/siverek-depo/repository"
	"github.com/meCodeKo/siverek-depo/utils"
)

const bcryptCost = 12

// AuthGet serves action=list, the user listing. Password hashes never leave
// the server because the model hides them from JSON.
func AuthGet(c *fiber.Ctx) error {
	if c.Query("action") != "list" {
		return utils.Fail(c, fiber.StatusUnprocessableEntity, "unknown action")
	}
	if !permissions.HasPermission(userRole(c), "users", "read") {
		return denied(c)
	}
	users, err := repository.GetAllUsers()
	if err != nil {
		return failErr(c, err)
	}
	return utils.OK(c, users)
}

// AuthPost dispatches login plus the user management actions. Login is the
// only action that works without a token.
func AuthPost(c *fiber.Ctx) error {
	req, err := parseAction(c)
	if err != nil {
		return utils.Fail(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	if req.Action == "login" {
		return login(c, req.Data)
	}

	if c.Locals("userID") == nil {
		return utils.Fail(c, fiber.StatusUnauthorized, "authentication required")
	}
	role := userRole(c)

	switch req.Action {
	case "add":
		if !permissions.HasPermission(role, "users", "create") {
			return denied(c)
		}
		return addUser(c, req.Data)
	case "update":
		if !permissions.HasPermission(role, "users", "update") {
			return denied(c)
		}
		return updateUser(c, req.Data)
	case "delete":
		if !permissions.HasPermission(role, "users", "delete") {
			return denied(c)
		}
		return deleteUser(c, req.Data)
	default:
		return utils.Fail(c, fiber.StatusUnprocessableEntity, "unknown action")
	}
}

func login(c *fiber.Ctx, data json.RawMessage) error {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.Unmarshal(data, &creds); err != nil ||
		creds.Username == "" || creds.Password == "" {
		return utils.Fail(c, fiber.StatusUnprocessableEntity, "username and password are required")
	}

	user, err := repository.GetUserByUsername(creds.Username)
	if err != nil {
		// Same message for unknown user and bad password.
		return utils.Fail(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)) != nil {
		return utils.Fail(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	if !user.IsActive {
		return utils.Fail(c, fiber.StatusUnauthorized, "account is disabled")
	}

	token, expiresAt, err := utils.GenerateToken(user.ID, user.Username, user.FullName, user.Role)
	if err != nil {
		return failErr(c, err)
	}
	if err := repository.UpdateLastLogin(user.ID); err != nil {
		zap.L().Warn("could not record last login", zap.String("userId", user.ID), zap.Error(err))
	}

	return utils.OKMessage(c, "login successful", fiber.Map{
		"user":      user,
		"token":     token,
		"expiresAt": expiresAt.UTC().Format(time.RFC3339),
	})
}

type userInput struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	Email      string `json:"email"`
	FullName   string `json:"fullName"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

func addUser(c *fiber.Ctx, data json.RawMessage) error {
	var in userInput
	if err := json.Unmarshal(data, &in); err != nil {
		return utils.Fail(c, fiber.StatusUnprocessableEntity, "invalid user payload")
	}
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" || in.Password == "" || strings.TrimSpace(in.FullName) == "" {
		return utils.Fail(c, fiber.StatusUnprocessableEntity, "username, password and fullName are required")
	}
	if len(in.Password) < 6 {
		return utils.Fail(c, fiber.StatusUnprocessableEntity, "password must be at least 6 characters")
	}
	if !models.ValidRole(in.Role) {
		return utils.Fail(c, fiber.StatusUnprocessableEntity, "unknown role")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return failErr(c, err)
	}
	id, err := repository.GenerateID("user")
	if err != nil {
		return failErr(c, err)
	}
	now := time.Now()
	user := &models.User{
		ID:         id,
		Username:   in.Username,
		Password:   string(hash),
		Email:      in.Email,
		FullName:   strings.TrimSpace(in.FullName),
		Role:       in.Role,
		Department: in.Department,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := repository.CreateUser(user); err != nil {
		return failErr(c, err)
	}
	return utils.Created(c, "user created", user)
}

func updateUser(c *fiber.Ctx, data json.RawMessage) error {
	var body struct {
		UserID     string  `json:"userId"`
		Password   *string `json:"password"`
		Email      *string `json:"email"`
		FullName   *string `json:"fullName"`
		Role       *string `json:"role"`
		Department *string `json:"department"`
		IsActive   *bool   `json:"isActive"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return utils.Fail(c, fiber.StatusUnprocessableEntity, "invalid user payload")
	}
	if body.UserID == "" {
		return utils.Fail(c, fiber.StatusUnprocessableEntity, "userId is required")
	}

	set := bson.M{}
	if body.Password != nil {
		if len(*body.Password) < 6 {
			return utils.Fail(c, fiber.StatusUnprocessableEntity, "password must be at least 6 characters")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*body.Password), bcryptCost)
		if err != nil {
			return failErr(c, err)
		}
		set["password"] = string(hash)
	}
	if body.Email != nil {
		set["email"] = *body.Email
	}
	if body.FullName != nil {
		if strings.TrimSpace(*body.FullName) == "" {
			return utils.Fail(c, fiber.StatusUnprocessableEntity, "fullName must not be empty")
		}
		set["full_name"] = strings.TrimSpace(*body.FullName)
	}
	if body.Role != nil {
		if !models.ValidRole(*body.Role) {
			return utils.Fail(c, fiber.StatusUnprocessableEntity, "unknown role")
		}
		set["role"] = *body.Role
	}
	if body.Department != nil {
		set["department"] = *body.Department
	}
	if body.IsActive != nil {
		set["is_active"] = *body.IsActive
	}
	if len(set) == 0 {
		return utils.Fail(c, fiber.StatusUnprocessableEntity, "no fields to update")
	}

	if err := repository.UpdateUser(body.UserID, set); err != nil {
		return failErr(c, err)
	}
	user, err := repository.GetUserByID(body.UserID)
	if err != nil {
		return failErr(c, err)
	}
	return utils.OKMessage(c, "user updated", user)
}

func deleteUser(c *fiber.Ctx, data json.RawMessage) error {
	var body struct {
		UserID string `json:"userId"`
	}
	if err := json.Unmarshal(data, &body); err != nil || body.UserID == "" {
		return utils.Fail(c, fiber.StatusUnprocessableEntity, "userId is required")
	}
	if callerID, _ := c.Locals("userID").(string); callerID == body.UserID {
		return utils.Fail(c, fiber.StatusUnprocessableEntity, "cannot delete your own account")
	}
	if err := repository.DeleteUser(body.UserID); err != nil {
		return failErr(c, err)
	}
	return utils.OKMessage(c, "user deleted", fiber.Map{"userId": body.UserID})
}
