package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pcaproject/timesheet-server/internal/app/controllers"
	"github.com/pcaproject/timesheet-server/internal/app/models"
	"github.com/pcaproject/timesheet-server/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	employeeController *controllers.EmployeeController,
	studentController *controllers.StudentController,
	timeSheetController *controllers.TimeSheetController,
	careController *controllers.CareController,
	statusController *controllers.StatusController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	v1.GET("/status", statusController.GetStatus)

	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.GET("/me", authController.GetProfile)

		// Employee routes. Reads are open to every authenticated
		// employee; writes are restricted to administrators.
		employees := authenticated.Group("/employees")
		{
			employees.GET("", employeeController.GetAllEmployees)
			employees.GET("/count", employeeController.CountEmployees)
			employees.GET("/:employee_id", employeeController.GetEmployee)

			// Password changes authorize per target inside the handler:
			// employees may change their own, administrators anyone's.
			employees.PUT("/:employee_id/password", authController.ChangePassword)

			employeesAdminProtected := employees.Group("")
			employeesAdminProtected.Use(authMiddleware.RoleRequired(models.RoleAdministrator))
			{
				employeesAdminProtected.POST("", employeeController.CreateEmployee)
				employeesAdminProtected.PUT("/:employee_id", employeeController.UpdateEmployee)
				employeesAdminProtected.DELETE("/:employee_id", employeeController.RemoveEmployee)
				employeesAdminProtected.DELETE("", employeeController.RemoveEmployees)
			}
		}

		// Student routes
		students := authenticated.Group("/students")
		{
			students.GET("", studentController.GetAllStudents)
			students.GET("/count", studentController.CountStudents)
			students.GET("/:student_id", studentController.GetStudent)

			// Check-in desk aliases on the student surface; same
			// handlers as /care.
			students.POST("/checkin", careController.CheckIn)
			students.POST("/checkout", careController.CheckOut)

			studentsAdminProtected := students.Group("")
			studentsAdminProtected.Use(authMiddleware.RoleRequired(models.RoleAdministrator))
			{
				studentsAdminProtected.POST("", studentController.CreateStudent)
				studentsAdminProtected.PUT("/:student_id", studentController.UpdateStudent)
				studentsAdminProtected.DELETE("/:student_id", studentController.RemoveStudent)
				studentsAdminProtected.DELETE("", studentController.RemoveStudents)
			}
		}

		// Timesheet routes. Per-employee access is authorized inside
		// the handlers: employees reach their own records,
		// administrators anyone's.
		timesheet := authenticated.Group("/timesheet")
		{
			timesheet.GET("/count", timeSheetController.CountRecords)
			timesheet.GET("/:employee_id", timeSheetController.GetRange)
			timesheet.POST("/:employee_id", timeSheetController.Submit)
			timesheet.PUT("/:employee_id", timeSheetController.UpdateRecord)
			timesheet.DELETE("/:employee_id", timeSheetController.DeleteRecords)
		}

		// Care routes. Any authenticated employee runs the check-in
		// desk; deletions are administrative corrections.
		care := authenticated.Group("/care")
		{
			care.POST("/checkin", careController.CheckIn)
			care.POST("/checkout", careController.CheckOut)
			care.GET("/timeslots", careController.GetTimeSlots)
			care.GET("/count", careController.CountRecords)
			care.GET("/:student_id", careController.GetRange)
			care.GET("/:student_id/:care_date", careController.GetDay)

			careAdminProtected := care.Group("")
			careAdminProtected.Use(authMiddleware.RoleRequired(models.RoleAdministrator))
			{
				careAdminProtected.DELETE("", careController.DeleteRecords)
			}
		}
	}
}
