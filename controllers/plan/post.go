package planController

import (
	"log"

	"shopfit/database"
	"shopfit/middleware"
	"shopfit/models/plan"
	"shopfit/utils"

	"github.com/gofiber/fiber/v2"
)

// CreatePost publishes a proof-of-completion post. The user's run of the
// plan must be completed with every goal finished.
func CreatePost(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	planId, err := c.ParamsInt("id")
	if err != nil || planId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid plan id!", nil)
	}
	content := c.FormValue("content")
	if content == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Content is required!", nil)
	}

	db := database.Database.Db

	var userPlan plan.UserPlan
	if err := db.Where("user_id = ? AND plan_id = ? AND status = ?", userId, planId, plan.UserPlanCompleted).
		First(&userPlan).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "User has not completed the plan.", nil)
	}

	var totalGoals int64
	db.Model(&plan.Goal{}).Where("plan_id = ?", planId).Count(&totalGoals)

	var completedGoals int64
	db.Model(&plan.UserGoalProgress{}).
		Where("user_plan_id = ? AND status = ?", userPlan.ID, plan.GoalCompleted).
		Count(&completedGoals)

	if completedGoals != totalGoals {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "User has not completed all the goals for this plan.", nil)
	}

	imageURL := ""
	if file, err := c.FormFile("image"); err == nil {
		imageURL, err = utils.UploadImage(file, "posts")
		if err != nil {
			log.Printf("Error uploading post image: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload image!", nil)
		}
	}

	post := plan.Post{
		UserID:   userId,
		PlanID:   uint(planId),
		Content:  content,
		ImageURL: imageURL,
	}

	if err := db.Create(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create post!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Post created successfully!", post)
}

// ListPosts returns all posts; ?user= filters by author.
func ListPosts(c *fiber.Ctx) error {
	db := database.Database.Db

	query := db.Preload("Plan").Order("created_at DESC")
	if userFilter := c.QueryInt("user", 0); userFilter > 0 {
		query = query.Where("user_id = ?", userFilter)
	}

	var posts []plan.Post
	if err := query.Find(&posts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch posts!", nil)
	}

	if len(posts) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No posts found.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Posts retrieved successfully!", posts)
}
