package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/PrinceS45/SIH-CampusOne-sub000/constants"
	"github.com/PrinceS45/SIH-CampusOne-sub000/controllers"
	middlewares "github.com/PrinceS45/SIH-CampusOne-sub000/middleware"
	"github.com/PrinceS45/SIH-CampusOne-sub000/services"
	"github.com/PrinceS45/SIH-CampusOne-sub000/services/audit"
	"github.com/PrinceS45/SIH-CampusOne-sub000/services/logger"
	"github.com/PrinceS45/SIH-CampusOne-sub000/services/notification"
)

// SetupRoutes builds the service and controller graph and registers every
// endpoint under /api/v1. The hostel and fee services are returned for the
// cron jobs.
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, m *melody.Melody, auditSvc audit.Service) (*services.HostelService, *services.FeeService) {
	log := logger.NewDefaultLogger(logger.InfoLevel)
	notifier := notification.NewMelodyService(m)

	authService := services.NewAuthService(services.AuthServiceOptions{DB: db, Logger: log})
	studentService := services.NewStudentService(services.StudentServiceOptions{DB: db, Logger: log})
	hostelService := services.NewHostelService(services.HostelServiceOptions{DB: db, Redis: redisCli, Logger: log})
	feeService := services.NewFeeService(services.FeeServiceOptions{DB: db, Logger: log})
	examService := services.NewExamService(services.ExamServiceOptions{DB: db, Logger: log})
	searchService := services.NewSearchService(services.SearchServiceOptions{DB: db, Logger: log})
	allocationService := services.NewAllocationService(services.AllocationServiceOptions{
		DB:       db,
		Logger:   log,
		Audit:    auditSvc,
		Notifier: notifier,
	})

	authController := controllers.NewAuthController(authService, auditSvc)
	studentController := controllers.NewStudentController(studentService, redisCli, auditSvc)
	hostelController := controllers.NewHostelController(hostelService, allocationService)
	feeController := controllers.NewFeeController(feeService, auditSvc)
	examController := controllers.NewExamController(examService, auditSvc)
	logController := controllers.NewLogController(db)
	searchController := controllers.NewSearchController(searchService)

	staff := middlewares.AuthMiddleware(constants.RoleStaff, constants.RoleAdmin)
	admin := middlewares.AuthMiddleware(constants.RoleAdmin)

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	v1.POST("/auth/login", authController.Login)
	v1.POST("/auth/register", admin, authController.Register)
	v1.GET("/auth/profile", staff, authController.Profile)
	v1.PUT("/auth/password", staff, authController.ChangePassword)

	v1.POST("/students", staff, studentController.CreateStudent)
	v1.GET("/students", staff, studentController.GetStudents)
	v1.GET("/students/stats", staff, studentController.GetStudentStats)
	v1.GET("/students/code/:code", staff, studentController.GetStudentByCode)
	v1.GET("/students/:id", staff, studentController.GetStudentByID)
	v1.PUT("/students/:id", staff, studentController.UpdateStudent)
	v1.PUT("/students/:id/status", staff, studentController.ChangeStudentStatus)
	v1.DELETE("/students/:id", admin, studentController.DeleteStudent)
	v1.GET("/students/:id/results", staff, examController.GetStudentResults)

	v1.POST("/hostels", admin, hostelController.CreateHostel)
	v1.GET("/hostels", staff, hostelController.GetHostels)
	v1.GET("/hostels/stats/occupancy", staff, hostelController.GetOccupancyStats)
	v1.POST("/hostels/allocate", staff, hostelController.Allocate)
	v1.POST("/hostels/deallocate", staff, hostelController.Deallocate)
	v1.GET("/hostels/:id", staff, hostelController.GetHostelByID)
	v1.PUT("/hostels/:id", admin, hostelController.UpdateHostel)
	v1.DELETE("/hostels/:id", admin, hostelController.DeleteHostel)
	v1.GET("/hostels/:id/rooms", staff, hostelController.GetHostelRooms)
	v1.POST("/hostels/:id/rooms", admin, hostelController.CreateRoom)

	v1.GET("/rooms/:id", staff, hostelController.GetRoom)
	v1.PUT("/rooms/:id", admin, hostelController.UpdateRoom)
	v1.PUT("/rooms/:id/status", staff, hostelController.ChangeRoomStatus)
	v1.DELETE("/rooms/:id", admin, hostelController.DeleteRoom)

	v1.POST("/fees", staff, feeController.CreateFee)
	v1.GET("/fees", staff, feeController.GetFees)
	v1.GET("/fees/stats", staff, feeController.GetFeeStats)
	v1.GET("/fees/:id", staff, feeController.GetFee)
	v1.PUT("/fees/:id", staff, feeController.UpdateFee)
	v1.POST("/fees/:id/collect", staff, feeController.CollectFee)
	v1.DELETE("/fees/:id", admin, feeController.DeleteFee)

	v1.POST("/exams", staff, examController.CreateExam)
	v1.GET("/exams", staff, examController.GetExams)
	v1.GET("/exams/:id", staff, examController.GetExam)
	v1.PUT("/exams/:id", staff, examController.UpdateExam)
	v1.DELETE("/exams/:id", admin, examController.DeleteExam)
	v1.POST("/exams/:id/results", staff, examController.RecordResult)
	v1.GET("/exams/:id/results", staff, examController.GetExamResults)
	v1.GET("/exams/:id/stats", staff, examController.GetExamStats)

	v1.GET("/logs", admin, logController.GetAuditLogs)
	v1.GET("/logs/:id", admin, logController.GetAuditLog)

	v1.GET("/search/students", staff, searchController.SearchStudents)
	v1.GET("/search/hostels", staff, searchController.SearchHostels)

	return hostelService, feeService
}
