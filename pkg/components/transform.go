package components

// TransformComponent 非刚体实体的位置与朝向（世界坐标，米/度）
// 炮台炮管使用它作为瞄准变换
type TransformComponent struct {
	X, Y     float64
	Rotation float64
}
